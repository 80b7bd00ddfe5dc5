package storage_test

import (
	"bytes"
	"testing"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/storage"
	"hostwire.io/pathenv/storage/mem"
)

func TestMulti_OrderedFallback(t *testing.T) {
	primary := mem.New()
	fallback := mem.New()
	multi := storage.Multi{Stores: []storage.Store{primary, fallback}}

	enc := pathenv.Snapshot{
		Comparison:      pathenv.InvariantCulture,
		Separator:       '/',
		AltSeparator:    '/',
		VolumeSeparator: '/',
		WorkingDir:      "/fallback/only",
	}.Encode()

	id, err := fallback.Put(enc)
	if err != nil {
		t.Fatalf("Put(fallback): %v", err)
	}

	if !multi.Has(id) {
		t.Fatalf("Has: expected hit via fallback store")
	}
	got, err := multi.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, enc) {
		t.Fatalf("Get bytes mismatch")
	}

	// Put goes to the first store only.
	enc2 := pathenv.Snapshot{Comparison: pathenv.Ordinal, Separator: '/', AltSeparator: '/', VolumeSeparator: '/', WorkingDir: "/primary"}.Encode()
	id2, err := multi.Put(enc2)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !primary.Has(id2) {
		t.Fatalf("primary store missing written object")
	}
	if fallback.Has(id2) {
		t.Fatalf("fallback store must not receive writes")
	}
}

func TestMulti_Empty(t *testing.T) {
	var multi storage.Multi
	if _, err := multi.Put([]byte("x")); err == nil {
		t.Fatalf("Put on empty Multi should fail")
	}
}
