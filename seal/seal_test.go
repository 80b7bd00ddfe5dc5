package seal

import (
	"crypto/ed25519"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"hostwire.io/pathenv/pathenv"
)

func testKeypair(t *testing.T, seedByte byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = seedByte
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return priv.Public().(ed25519.PublicKey), priv
}

func encodedSnapshot() []byte {
	return pathenv.Snapshot{
		Comparison:      pathenv.OrdinalIgnoreCase,
		Separator:       '\\',
		AltSeparator:    '/',
		VolumeSeparator: ':',
		WorkingDir:      `C:\hosts\plugin`,
	}.Encode()
}

func TestSealEd25519_RoundTrip(t *testing.T) {
	_, priv := testKeypair(t, 0xA7)
	payload := encodedSnapshot()

	for _, hash := range []HashAlg{HashSHA256, HashSHA512, HashSHA3256} {
		env, err := SealEd25519(payload, hash, priv)
		if err != nil {
			t.Fatalf("%s: SealEd25519: %v", hash, err)
		}
		if err := env.Verify(); err != nil {
			t.Fatalf("%s: Verify: %v", hash, err)
		}

		decoded, err := Decode(env.Encode())
		if err != nil {
			t.Fatalf("%s: Decode: %v", hash, err)
		}
		if !decoded.Equal(env) {
			t.Fatalf("%s: envelope round trip mismatch", hash)
		}
		if err := decoded.Verify(); err != nil {
			t.Fatalf("%s: Verify(decoded): %v", hash, err)
		}

		snap, err := pathenv.Decode(decoded.Payload)
		if err != nil {
			t.Fatalf("%s: payload no longer decodes: %v", hash, err)
		}
		if snap.WorkingDir != `C:\hosts\plugin` {
			t.Fatalf("%s: payload mismatch: %+v", hash, snap)
		}
	}
}

func TestSealDilithium3_RoundTrip(t *testing.T) {
	pub, priv, err := mode3.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	env, err := SealDilithium3(encodedSnapshot(), HashSHA3256, pub, priv)
	if err != nil {
		t.Fatalf("SealDilithium3: %v", err)
	}
	if err := env.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	decoded, err := Decode(env.Encode())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := decoded.Verify(); err != nil {
		t.Fatalf("Verify(decoded): %v", err)
	}
}

func TestVerify_DetectsTamperedPayload(t *testing.T) {
	_, priv := testKeypair(t, 0x3C)
	env, err := SealEd25519(encodedSnapshot(), HashSHA256, priv)
	if err != nil {
		t.Fatalf("SealEd25519: %v", err)
	}

	enc := env.Encode()
	// Flip a byte inside the working directory at the end of the payload.
	enc[len(enc)-1] ^= 0x01

	tampered, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := tampered.Verify(); err == nil {
		t.Fatalf("Verify accepted a tampered payload")
	}
}

func TestVerify_RejectsWrongKey(t *testing.T) {
	_, privA := testKeypair(t, 0x01)
	pubB, _ := testKeypair(t, 0x02)

	env, err := SealEd25519(encodedSnapshot(), HashSHA256, privA)
	if err != nil {
		t.Fatalf("SealEd25519: %v", err)
	}
	env.PublicKey = pubB
	if err := env.Verify(); err == nil {
		t.Fatalf("Verify accepted a signature from a different key")
	}
}

func TestDecode_Truncated(t *testing.T) {
	_, priv := testKeypair(t, 0x55)
	env, err := SealEd25519(encodedSnapshot(), HashSHA256, priv)
	if err != nil {
		t.Fatalf("SealEd25519: %v", err)
	}
	enc := env.Encode()

	for _, cut := range []int{len(enc) - 1, len(enc) / 2, 5, 1} {
		if _, err := Decode(enc[:cut]); err == nil {
			t.Fatalf("cut to %d bytes: expected error", cut)
		} else if !strings.HasPrefix(err.Error(), "seal: ") {
			t.Fatalf("cut to %d bytes: unexpected error %v", cut, err)
		}
	}
}

func TestDecode_RejectsTrailingBytes(t *testing.T) {
	_, priv := testKeypair(t, 0x77)
	env, err := SealEd25519(encodedSnapshot(), HashSHA256, priv)
	if err != nil {
		t.Fatalf("SealEd25519: %v", err)
	}
	if _, err := Decode(append(env.Encode(), 0x00)); err == nil {
		t.Fatalf("expected error for trailing bytes")
	}
}

func TestSeal_UnsupportedHash(t *testing.T) {
	_, priv := testKeypair(t, 0x99)
	if _, err := SealEd25519(encodedSnapshot(), HashAlg(9), priv); err == nil {
		t.Fatalf("expected error for unsupported hash")
	}
}
