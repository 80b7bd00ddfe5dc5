// Package testkit provides a reusable conformance suite for Store
// implementations.
package testkit

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"

	"hostwire.io/pathenv/pathenv"
	"hostwire.io/pathenv/snapid"
	"hostwire.io/pathenv/storage"
)

// NewStore constructs a fresh, empty store for a test.
// The returned store MUST be isolated from other tests.
type NewStore func(t *testing.T) storage.Store

func RunStoreConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	encoded := func(wd string) []byte {
		return pathenv.Snapshot{
			Comparison:      pathenv.Ordinal,
			Separator:       '/',
			AltSeparator:    '/',
			VolumeSeparator: '/',
			WorkingDir:      wd,
		}.Encode()
	}

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		store := newStore(t)
		want := encoded("/srv/host")

		id, err := store.Put(want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		wantID, err := snapid.ForBytes(want)
		if err != nil {
			t.Fatalf("snapid.ForBytes failed: %v", err)
		}
		if id != wantID {
			t.Fatalf("Put ID mismatch: got %s want %s", id, wantID)
		}

		got, err := store.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
		if _, err := pathenv.Decode(got); err != nil {
			t.Fatalf("stored snapshot no longer decodes: %v", err)
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		store := newStore(t)
		b := encoded("/same")

		id1, err := store.Put(b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := store.Put(b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if id1 != id2 {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		store := newStore(t)
		b := encoded("/missing")
		id, err := snapid.ForBytes(b)
		if err != nil {
			t.Fatalf("snapid.ForBytes failed: %v", err)
		}

		if store.Has(id) {
			t.Fatalf("Has returned true for missing ID")
		}
		if _, err := store.Get(id); !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}

		if _, err := store.Put(b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !store.Has(id) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectUndefID", func(t *testing.T) {
		store := newStore(t)
		var undef cid.Cid
		if store.Has(undef) {
			t.Fatalf("Has should be false for undefined ID")
		}
		if _, err := store.Get(undef); err == nil {
			t.Fatalf("Get should fail for undefined ID")
		}
	})
}
