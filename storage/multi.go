package storage

import (
	"errors"

	"github.com/ipfs/go-cid"
)

// Multi reads through an ordered list of stores, first hit wins.
//
// A component typically consults a local cache before asking the host's
// store; the slice order makes that fallback explicit and deterministic.
// Put writes only to the first store.
type Multi struct {
	Stores []Store
}

func (m Multi) Put(data []byte) (cid.Cid, error) {
	if len(m.Stores) == 0 {
		return cid.Undef, errors.New("storage: Multi has no stores")
	}
	return m.Stores[0].Put(data)
}

func (m Multi) Get(id cid.Cid) ([]byte, error) {
	for _, s := range m.Stores {
		b, err := s.Get(id)
		if err == nil {
			return b, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (m Multi) Has(id cid.Cid) bool {
	for _, s := range m.Stores {
		if s.Has(id) {
			return true
		}
	}
	return false
}
