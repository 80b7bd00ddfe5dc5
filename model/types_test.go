package model

import (
	"encoding/json"
	"testing"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/snapid"
)

func TestDescribe_JSONShape(t *testing.T) {
	s := pathenv.Snapshot{
		Comparison:      pathenv.Ordinal,
		Separator:       '/',
		AltSeparator:    '/',
		VolumeSeparator: ':',
		WorkingDir:      "/home/user",
	}

	b, err := json.MarshalIndent(Describe(s), "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}

	want := "{\n" +
		"  \"comparison\": \"ordinal\",\n" +
		"  \"mode\": 0,\n" +
		"  \"separator\": \"/\",\n" +
		"  \"separatorCode\": 47,\n" +
		"  \"altSeparator\": \"/\",\n" +
		"  \"altSeparatorCode\": 47,\n" +
		"  \"volumeSeparator\": \":\",\n" +
		"  \"volumeSeparatorCode\": 58,\n" +
		"  \"workingDir\": \"/home/user\",\n" +
		"  \"id\": \"" + snapid.String(s.Encode()) + "\",\n" +
		"  \"encodedSize\": 24\n" +
		"}"

	if string(b) != want {
		t.Fatalf("projection mismatch:\n%s", string(b))
	}
}

func TestDescribe_UnknownMode(t *testing.T) {
	info := Describe(pathenv.Snapshot{Comparison: pathenv.ComparisonMode(42), WorkingDir: "/"})
	if info.Comparison != "unknown" {
		t.Fatalf("Comparison: got %q want unknown", info.Comparison)
	}
	if info.Mode != 42 {
		t.Fatalf("Mode: got %d want 42", info.Mode)
	}
}

func TestDescribe_SurrogateSeparatorsStayDistinct(t *testing.T) {
	base := pathenv.Snapshot{Comparison: pathenv.Ordinal, WorkingDir: "/"}

	low := base
	low.Separator = 0xD800
	high := base
	high.Separator = 0xDFFF

	a := Describe(low)
	b := Describe(high)
	if a.Separator == b.Separator {
		t.Fatalf("distinct surrogate separators collapsed to %q", a.Separator)
	}
	if a.Separator != `\ud800` || b.Separator != `\udfff` {
		t.Fatalf("surrogate rendering: got %q and %q", a.Separator, b.Separator)
	}
	if a.SeparatorCode != 0xD800 || b.SeparatorCode != 0xDFFF {
		t.Fatalf("separator codes: got %d and %d", a.SeparatorCode, b.SeparatorCode)
	}
}
