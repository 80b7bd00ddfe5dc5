package storage

import (
	"fmt"

	"github.com/ipfs/go-cid"

	"hostwire.io/pathenv/snapid"
)

// Named associates a store with a stable backend name.
//
// This is used for multi-backend orchestration where callers need to retain
// per-backend metadata (e.g., for reporting or auditing).
type Named struct {
	Name  string
	Store Store
}

// Replicating writes to all configured backends.
//
// Reads fall back in order. Writes go to all backends and require all
// returned IDs to match (otherwise ErrIDMismatch is returned).
//
// Use PutAll when you need the per-backend ID mapping.
type Replicating struct {
	Backends []Named
}

var _ Store = Replicating{}

// PutAll writes the same encoded snapshot to all backends.
//
// It returns:
// - the canonical ID (computed from data)
// - a map of backend name -> returned ID
//
// If any backend returns a different ID, ErrIDMismatch is returned.
func (r Replicating) PutAll(data []byte) (cid.Cid, map[string]cid.Cid, error) {
	want, err := snapid.ForBytes(data)
	if err != nil {
		return cid.Undef, nil, err
	}
	if !want.Defined() {
		return cid.Undef, nil, ErrInvalidID
	}
	if len(r.Backends) == 0 {
		return cid.Undef, nil, fmt.Errorf("storage: Replicating has no backends")
	}

	out := make(map[string]cid.Cid, len(r.Backends))
	for _, b := range r.Backends {
		if b.Store == nil {
			return cid.Undef, nil, fmt.Errorf("storage: nil store for backend %q", b.Name)
		}
		got, err := b.Store.Put(data)
		if err != nil {
			return cid.Undef, nil, err
		}
		out[b.Name] = got
		if got != want {
			return cid.Undef, out, ErrIDMismatch
		}
	}
	return want, out, nil
}

func (r Replicating) Put(data []byte) (cid.Cid, error) {
	id, _, err := r.PutAll(data)
	return id, err
}

func (r Replicating) Get(id cid.Cid) ([]byte, error) {
	for _, b := range r.Backends {
		if b.Store == nil {
			continue
		}
		out, err := b.Store.Get(id)
		if err == nil {
			return out, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (r Replicating) Has(id cid.Cid) bool {
	for _, b := range r.Backends {
		if b.Store != nil && b.Store.Has(id) {
			return true
		}
	}
	return false
}
