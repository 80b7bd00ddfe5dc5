// Package pathenv captures an immutable snapshot of a host's path-handling
// semantics (comparison rules, separator characters, working directory) and
// defines an exact binary encoding for carrying that snapshot across a
// process or module boundary.
//
// The encoding is fixed and versionless. Encoded bytes produced by one
// process must decode to an equal Snapshot in another, so downstream code
// interprets paths exactly as the host does.
package pathenv
