// Package seal lets a host sign an encoded snapshot so a loaded component
// can authenticate its origin before trusting the path semantics it carries.
//
// A sealed snapshot is a self-contained envelope: key algorithm, hash
// algorithm, the signer's public key, a signature over hash(payload), and
// the payload itself. The envelope uses the same little-endian,
// length-prefixed framing discipline as the snapshot codec.
package seal

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"
)

// KeyAlg identifies the signature scheme of an envelope.
type KeyAlg uint8

const (
	KeyEd25519 KeyAlg = iota + 1
	// KeyDilithium3 is the post-quantum option.
	KeyDilithium3
)

func (a KeyAlg) String() string {
	switch a {
	case KeyEd25519:
		return "ed25519"
	case KeyDilithium3:
		return "dilithium3"
	default:
		return fmt.Sprintf("keyalg(%d)", uint8(a))
	}
}

// HashAlg identifies the digest the signature covers.
type HashAlg uint8

const (
	HashSHA256 HashAlg = iota + 1
	HashSHA512
	HashSHA3256
)

func (h HashAlg) String() string {
	switch h {
	case HashSHA256:
		return "sha256"
	case HashSHA512:
		return "sha512"
	case HashSHA3256:
		return "sha3-256"
	default:
		return fmt.Sprintf("hashalg(%d)", uint8(h))
	}
}

func digestFor(h HashAlg, message []byte) ([]byte, error) {
	switch h {
	case HashSHA256:
		s := sha256.Sum256(message)
		return s[:], nil
	case HashSHA512:
		s := sha512.Sum512(message)
		return s[:], nil
	case HashSHA3256:
		s := sha3.Sum256(message)
		return s[:], nil
	default:
		return nil, fmt.Errorf("seal: unsupported hash algorithm %s", h)
	}
}

// Envelope is a sealed payload. Construct with SealEd25519/SealDilithium3 or
// Decode; Verify checks the signature against the embedded public key.
type Envelope struct {
	KeyAlg    KeyAlg
	HashAlg   HashAlg
	PublicKey []byte
	Signature []byte
	Payload   []byte
}

// SealEd25519 signs hash(payload) with an ed25519 key.
func SealEd25519(payload []byte, hash HashAlg, priv ed25519.PrivateKey) (*Envelope, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("seal: invalid ed25519 private key length %d", len(priv))
	}
	digest, err := digestFor(hash, payload)
	if err != nil {
		return nil, err
	}
	pub := priv.Public().(ed25519.PublicKey)
	return &Envelope{
		KeyAlg:    KeyEd25519,
		HashAlg:   hash,
		PublicKey: append([]byte(nil), pub...),
		Signature: ed25519.Sign(priv, digest),
		Payload:   append([]byte(nil), payload...),
	}, nil
}

// SealDilithium3 signs hash(payload) with a dilithium3 key.
func SealDilithium3(payload []byte, hash HashAlg, pub *mode3.PublicKey, priv *mode3.PrivateKey) (*Envelope, error) {
	if pub == nil || priv == nil {
		return nil, fmt.Errorf("seal: missing dilithium3 keypair")
	}
	digest, err := digestFor(hash, payload)
	if err != nil {
		return nil, err
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("seal: marshal public key: %w", err)
	}
	sig := make([]byte, mode3.SignatureSize)
	mode3.SignTo(priv, digest, sig)
	return &Envelope{
		KeyAlg:    KeyDilithium3,
		HashAlg:   hash,
		PublicKey: pubBytes,
		Signature: sig,
		Payload:   append([]byte(nil), payload...),
	}, nil
}

// Verify checks the envelope's signature over hash(Payload) using the
// embedded public key.
func (e *Envelope) Verify() error {
	if e == nil {
		return fmt.Errorf("seal: nil envelope")
	}
	digest, err := digestFor(e.HashAlg, e.Payload)
	if err != nil {
		return err
	}

	switch e.KeyAlg {
	case KeyEd25519:
		if len(e.PublicKey) != ed25519.PublicKeySize {
			return fmt.Errorf("seal: invalid ed25519 public key length %d", len(e.PublicKey))
		}
		if len(e.Signature) != ed25519.SignatureSize {
			return fmt.Errorf("seal: invalid ed25519 signature length %d", len(e.Signature))
		}
		if !ed25519.Verify(ed25519.PublicKey(e.PublicKey), digest, e.Signature) {
			return fmt.Errorf("seal: signature invalid")
		}
		return nil
	case KeyDilithium3:
		var pk mode3.PublicKey
		if err := pk.UnmarshalBinary(e.PublicKey); err != nil {
			return fmt.Errorf("seal: invalid dilithium3 public key: %w", err)
		}
		if len(e.Signature) != mode3.SignatureSize {
			return fmt.Errorf("seal: invalid dilithium3 signature length %d", len(e.Signature))
		}
		if !mode3.Verify(&pk, digest, e.Signature) {
			return fmt.Errorf("seal: signature invalid")
		}
		return nil
	default:
		return fmt.Errorf("seal: unsupported key algorithm %s", e.KeyAlg)
	}
}

// Equal reports field-wise equality; useful in tests and idempotence checks.
func (e *Envelope) Equal(other *Envelope) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.KeyAlg == other.KeyAlg &&
		e.HashAlg == other.HashAlg &&
		bytes.Equal(e.PublicKey, other.PublicKey) &&
		bytes.Equal(e.Signature, other.Signature) &&
		bytes.Equal(e.Payload, other.Payload)
}
