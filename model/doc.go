// Package model defines stable boundary types for inspection output.
//
// Wire identity (the canonical snapshot encoding and its ID) is unaffected
// by any projection. These structs are the only types intended for direct
// JSON serialization by consumers.
package model
