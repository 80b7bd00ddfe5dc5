// Package storage defines content-addressed stores for encoded snapshots.
package storage

import "github.com/ipfs/go-cid"

// Store is a minimal content-addressed store for encoded snapshot bytes.
//
// Contract:
// - Put MUST be idempotent.
// - Stored objects MUST be immutable.
// - IDs MUST be derived from the bytes written (snapid.ForBytes).
// - Get MUST return ErrNotFound when the ID is absent.
type Store interface {
	Put(data []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
