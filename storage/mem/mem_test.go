package mem

import (
	"sync"
	"testing"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/storage"
	"hostwire.io/pathenv/storage/testkit"
)

func TestMem_Conformance(t *testing.T) {
	testkit.RunStoreConformance(t, func(t *testing.T) storage.Store {
		t.Helper()
		return New()
	})
}

func TestMem_CallerCannotMutateStoredBytes(t *testing.T) {
	store := New()
	enc := pathenv.Snapshot{Comparison: pathenv.Ordinal, Separator: '/', AltSeparator: '/', VolumeSeparator: '/', WorkingDir: "/a"}.Encode()

	id, err := store.Put(enc)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	enc[0] = 0xFF

	got, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got[0] == 0xFF {
		t.Fatalf("stored bytes aliased the caller's buffer")
	}
	got[0] = 0xEE
	again, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again[0] == 0xEE {
		t.Fatalf("returned bytes aliased the stored buffer")
	}
}

func TestMem_ConcurrentPut(t *testing.T) {
	store := New()
	enc := pathenv.Snapshot{Comparison: pathenv.Ordinal, Separator: '/', AltSeparator: '/', VolumeSeparator: '/', WorkingDir: "/shared"}.Encode()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Put(enc); err != nil {
				t.Errorf("Put: %v", err)
			}
		}()
	}
	wg.Wait()
}
