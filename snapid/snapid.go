// Package snapid derives content identifiers for encoded snapshots.
//
// Snapshots are identified by their canonical encoded bytes: same bytes,
// same ID. IDs are IPFS-compatible CIDv1 (raw + sha2-256), so any
// content-addressed store or gateway can serve them.
package snapid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ForBytes returns the CIDv1 (raw + sha2-256) of encoded snapshot bytes.
func ForBytes(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String is ForBytes rendered as a string; it returns "" only on the
// unreachable multihash failure path.
func String(data []byte) string {
	id, err := ForBytes(data)
	if err != nil {
		return ""
	}
	return id.String()
}
