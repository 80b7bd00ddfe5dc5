package seal

import (
	"encoding/binary"
	"fmt"
)

// Envelope wire layout, all integers little-endian:
//
//	offset 0 uint8  key algorithm
//	offset 1 uint8  hash algorithm
//	then three length-prefixed fields, each uint32 length + bytes:
//	public key, signature, payload
//
// Unlike the snapshot codec, every field here is read sequentially; the
// envelope carries no trailing slack.
const envelopeHeaderSize = 2

// Encode returns the canonical binary form of the envelope.
//
// Like the snapshot codec, Encode is total: algorithm validity is enforced
// by Verify and at sealing time, not here.
func (e *Envelope) Encode() []byte {
	size := envelopeHeaderSize + 4 + len(e.PublicKey) + 4 + len(e.Signature) + 4 + len(e.Payload)
	buf := make([]byte, 0, size)
	buf = append(buf, byte(e.KeyAlg), byte(e.HashAlg))
	buf = appendField(buf, e.PublicKey)
	buf = appendField(buf, e.Signature)
	buf = appendField(buf, e.Payload)
	return buf
}

func appendField(buf, field []byte) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(field)))
	return append(buf, field...)
}

// Decode parses a sealed envelope. It validates framing only; call Verify
// to check the signature.
func Decode(data []byte) (*Envelope, error) {
	if len(data) < envelopeHeaderSize {
		return nil, fmt.Errorf("seal: envelope shorter than header")
	}
	e := &Envelope{
		KeyAlg:  KeyAlg(data[0]),
		HashAlg: HashAlg(data[1]),
	}
	rest := data[envelopeHeaderSize:]

	var err error
	if e.PublicKey, rest, err = readField(rest, "public key"); err != nil {
		return nil, err
	}
	if e.Signature, rest, err = readField(rest, "signature"); err != nil {
		return nil, err
	}
	if e.Payload, rest, err = readField(rest, "payload"); err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("seal: %d trailing bytes after payload", len(rest))
	}
	return e, nil
}

func readField(data []byte, name string) (field, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("seal: envelope truncated inside %s length", name)
	}
	n := binary.LittleEndian.Uint32(data[:4])
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, fmt.Errorf("seal: envelope truncated inside %s", name)
	}
	return append([]byte(nil), data[:n]...), data[n:], nil
}
