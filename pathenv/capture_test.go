package pathenv

import (
	"errors"
	"testing"
)

type fakeProvider struct {
	mode  ComparisonMode
	sep   uint16
	alt   uint16
	vol   uint16
	wd    string
	wdErr error
}

func (f fakeProvider) Comparison() ComparisonMode { return f.mode }

func (f fakeProvider) Separators() (uint16, uint16, uint16) { return f.sep, f.alt, f.vol }

func (f fakeProvider) WorkingDir() (string, error) { return f.wd, f.wdErr }

func TestCapture(t *testing.T) {
	p := fakeProvider{mode: OrdinalIgnoreCase, sep: '\\', alt: '/', vol: ':', wd: `C:\work`}
	s, err := Capture(p)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	want := Snapshot{OrdinalIgnoreCase, '\\', '/', ':', `C:\work`}
	if s != want {
		t.Fatalf("captured snapshot mismatch: got %+v want %+v", s, want)
	}
}

func TestCapture_NilProvider(t *testing.T) {
	_, err := Capture(nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsKind(err, KindCapture) || RuleID(err) != "PATHENV-CAP-001" {
		t.Fatalf("got %v, want Capture/PATHENV-CAP-001", err)
	}
}

func TestCapture_WorkingDirError(t *testing.T) {
	cause := errors.New("getwd: permission denied")
	_, err := Capture(fakeProvider{wdErr: cause})
	if err == nil {
		t.Fatalf("expected error")
	}
	if RuleID(err) != "PATHENV-CAP-002" {
		t.Fatalf("got %v, want PATHENV-CAP-002", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not preserved: %v", err)
	}
}

func TestParseComparisonMode_RoundTrip(t *testing.T) {
	for m := Ordinal; m <= InvariantCultureIgnoreCase; m++ {
		got, err := ParseComparisonMode(m.String())
		if err != nil {
			t.Fatalf("ParseComparisonMode(%s): %v", m, err)
		}
		if got != m {
			t.Fatalf("ParseComparisonMode(%s): got %d want %d", m, got, m)
		}
	}
	if _, err := ParseComparisonMode("linguistic"); err == nil {
		t.Fatalf("expected error for unknown name")
	}
}
