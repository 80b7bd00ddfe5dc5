package pathenv

// ComparisonMode selects the string-comparison strategy used for paths.
//
// The integer values are the wire values; they must not be reordered.
type ComparisonMode int32

const (
	// Ordinal compares paths by UTF-16 code unit value.
	Ordinal ComparisonMode = iota
	// OrdinalIgnoreCase is Ordinal with simple case folding.
	OrdinalIgnoreCase
	// CultureSensitive compares paths using the host locale's collation rules.
	CultureSensitive
	// CultureSensitiveIgnoreCase is CultureSensitive ignoring case.
	CultureSensitiveIgnoreCase
	// InvariantCulture compares paths using locale-independent collation rules.
	InvariantCulture
	// InvariantCultureIgnoreCase is InvariantCulture ignoring case.
	InvariantCultureIgnoreCase
)

var comparisonNames = map[ComparisonMode]string{
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
	CultureSensitive:           "culture-sensitive",
	CultureSensitiveIgnoreCase: "culture-sensitive-ignore-case",
	InvariantCulture:           "invariant-culture",
	InvariantCultureIgnoreCase: "invariant-culture-ignore-case",
}

func (m ComparisonMode) String() string {
	if s, ok := comparisonNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseComparisonMode maps a mode name (as produced by String) back to its value.
func ParseComparisonMode(s string) (ComparisonMode, error) {
	for m, name := range comparisonNames {
		if s == name {
			return m, nil
		}
	}
	return 0, newError(KindMode, "PATHENV-MODE-002", "unknown comparison mode name: "+s)
}

// Snapshot is an immutable record of a host's path-handling semantics.
//
// Separator characters are stored as UTF-16 code units to match the wire
// layout. A Snapshot is a plain value: copies are independent and two
// snapshots are equal exactly when all five fields are equal.
//
// The Comparison field is not range-checked at construction or encode time;
// an out-of-range value only surfaces when Comparer is derived. Decoded
// snapshots preserve whatever mode value was on the wire.
type Snapshot struct {
	Comparison      ComparisonMode
	Separator       uint16
	AltSeparator    uint16
	VolumeSeparator uint16
	WorkingDir      string
}

// New constructs a Snapshot from explicit field values.
func New(mode ComparisonMode, sep, alt, volume uint16, workingDir string) Snapshot {
	return Snapshot{
		Comparison:      mode,
		Separator:       sep,
		AltSeparator:    alt,
		VolumeSeparator: volume,
		WorkingDir:      workingDir,
	}
}

// Provider exposes the ambient environment a Snapshot is captured from.
//
// Implementations must be read-only: Capture performs a pure read and is
// safe to call concurrently. The default platform policy (which comparison
// mode to use) lives behind this interface, not in the core.
type Provider interface {
	// Comparison returns the platform's default path-comparison policy.
	Comparison() ComparisonMode
	// Separators returns the primary, alternate, and volume separator
	// characters as UTF-16 code units.
	Separators() (sep, alt, volume uint16)
	// WorkingDir returns the current working directory.
	WorkingDir() (string, error)
}

// Capture reads the ambient environment through p and returns a new Snapshot.
// Each call is an independent read; nothing is cached or mutated.
func Capture(p Provider) (Snapshot, error) {
	if p == nil {
		return Snapshot{}, newError(KindCapture, "PATHENV-CAP-001", "missing environment provider")
	}
	wd, err := p.WorkingDir()
	if err != nil {
		return Snapshot{}, wrapError(KindCapture, "PATHENV-CAP-002", "working directory unavailable", err)
	}
	sep, alt, volume := p.Separators()
	return Snapshot{
		Comparison:      p.Comparison(),
		Separator:       sep,
		AltSeparator:    alt,
		VolumeSeparator: volume,
		WorkingDir:      wd,
	}, nil
}
