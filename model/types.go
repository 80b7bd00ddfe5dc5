package model

import (
	"fmt"
	"unicode/utf16"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/snapid"
)

// SnapshotInfo is a human- and JSON-friendly projection of a snapshot.
//
// Each separator carries both a display string and the raw UTF-16 code unit;
// the code fields are authoritative (surrogate code units have no UTF-8
// display form). Comparison holds the mode name, or "unknown" for an
// out-of-range wire value; Mode always carries the raw integer.
type SnapshotInfo struct {
	Comparison          string `json:"comparison"`
	Mode                int32  `json:"mode"`
	Separator           string `json:"separator"`
	SeparatorCode       uint16 `json:"separatorCode"`
	AltSeparator        string `json:"altSeparator"`
	AltSeparatorCode    uint16 `json:"altSeparatorCode"`
	VolumeSeparator     string `json:"volumeSeparator"`
	VolumeSeparatorCode uint16 `json:"volumeSeparatorCode"`
	WorkingDir          string `json:"workingDir"`
	ID                  string `json:"id"`
	EncodedSize         int    `json:"encodedSize"`
}

// Describe projects a snapshot for display.
func Describe(s pathenv.Snapshot) SnapshotInfo {
	enc := s.Encode()
	return SnapshotInfo{
		Comparison:          s.Comparison.String(),
		Mode:                int32(s.Comparison),
		Separator:           sepString(s.Separator),
		SeparatorCode:       s.Separator,
		AltSeparator:        sepString(s.AltSeparator),
		AltSeparatorCode:    s.AltSeparator,
		VolumeSeparator:     sepString(s.VolumeSeparator),
		VolumeSeparatorCode: s.VolumeSeparator,
		WorkingDir:          s.WorkingDir,
		ID:                  snapid.String(enc),
		EncodedSize:         len(enc),
	}
}

// sepString renders a separator code unit for display. Surrogate code units
// cannot be converted to a rune, so they render as a \u escape; distinct
// values stay distinct.
func sepString(u uint16) string {
	if utf16.IsSurrogate(rune(u)) {
		return fmt.Sprintf(`\u%04x`, u)
	}
	return string(rune(u))
}
