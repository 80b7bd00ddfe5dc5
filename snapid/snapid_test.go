package snapid

import (
	"testing"

	"hostwire.io/pathenv/pathenv"
)

func TestForBytes_Deterministic(t *testing.T) {
	enc := pathenv.Snapshot{
		Comparison:      pathenv.Ordinal,
		Separator:       '/',
		AltSeparator:    '/',
		VolumeSeparator: ':',
		WorkingDir:      "/home/user",
	}.Encode()

	a, err := ForBytes(enc)
	if err != nil {
		t.Fatalf("ForBytes: %v", err)
	}
	b, err := ForBytes(append([]byte(nil), enc...))
	if err != nil {
		t.Fatalf("ForBytes(copy): %v", err)
	}
	if !a.Defined() || a != b {
		t.Fatalf("ID not deterministic: %s vs %s", a, b)
	}
	if a.String() != String(enc) {
		t.Fatalf("String disagrees with ForBytes")
	}
}

func TestForBytes_DistinguishesSnapshots(t *testing.T) {
	s := pathenv.Snapshot{Comparison: pathenv.Ordinal, Separator: '/', AltSeparator: '/', VolumeSeparator: '/', WorkingDir: "/a"}
	other := s
	other.WorkingDir = "/b"
	if String(s.Encode()) == String(other.Encode()) {
		t.Fatalf("different snapshots must not share an ID")
	}
}
