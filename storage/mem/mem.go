// Package mem provides an in-memory snapshot store.
//
// It is the default daemon backend and the store of choice in tests: fast,
// isolated, and gone when the process exits.
package mem

import (
	"sync"

	"github.com/ipfs/go-cid"

	"hostwire.io/pathenv/snapid"
	"hostwire.io/pathenv/storage"
)

type Store struct {
	mu      sync.RWMutex
	objects map[cid.Cid][]byte
}

func New() *Store {
	return &Store{objects: make(map[cid.Cid][]byte)}
}

func (s *Store) Put(data []byte) (cid.Cid, error) {
	id, err := snapid.ForBytes(data)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, storage.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[id]; !ok {
		s.objects[id] = append([]byte(nil), data...)
	}
	return id, nil
}

func (s *Store) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidID
	}
	s.mu.RLock()
	b, ok := s.objects[id]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *Store) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	s.mu.RLock()
	_, ok := s.objects[id]
	s.mu.RUnlock()
	return ok
}
