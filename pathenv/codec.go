package pathenv

import (
	"encoding/binary"
	"unicode/utf8"
)

// Wire layout, all integers little-endian:
//
//	offset 0  int32  comparison mode
//	offset 4  uint16 primary separator
//	offset 6  uint16 alternate separator
//	offset 8  uint16 volume separator
//	offset 10 uint32 byte length n of the UTF-8 working directory
//	tail      n bytes, UTF-8 working directory
//
// The working directory occupies the last n bytes of the buffer. Decode
// reads it from the tail, not from offset 14, and only requires the buffer
// to span fixedHeaderSize+n bytes. Both quirks are part of the wire
// contract and must not be "fixed".
const (
	// fixedHeaderSize covers the mode and the three separators.
	fixedHeaderSize = 4 + 3*2
	// lengthPrefixEnd is the first byte past the working-directory length field.
	lengthPrefixEnd = fixedHeaderSize + 4
)

// Encode returns the canonical binary form of s: exactly
// 14 + len(s.WorkingDir) bytes.
//
// Encode is total. It does not validate the comparison mode, so a snapshot
// holding an out-of-range mode still round-trips losslessly; the bad value
// surfaces only when Comparer is derived.
func (s Snapshot) Encode() []byte {
	dir := []byte(s.WorkingDir)
	buf := make([]byte, lengthPrefixEnd+len(dir))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(s.Comparison))
	binary.LittleEndian.PutUint16(buf[4:6], s.Separator)
	binary.LittleEndian.PutUint16(buf[6:8], s.AltSeparator)
	binary.LittleEndian.PutUint16(buf[8:10], s.VolumeSeparator)
	binary.LittleEndian.PutUint32(buf[10:lengthPrefixEnd], uint32(len(dir)))
	copy(buf[lengthPrefixEnd:], dir)
	return buf
}

// Decode parses data into a Snapshot. It is the exact inverse of Encode for
// any encoded snapshot, and fails cleanly on anything shorter or malformed.
//
// The comparison mode is accepted as-is; no range check happens here.
func Decode(data []byte) (Snapshot, error) {
	if len(data) < fixedHeaderSize {
		return Snapshot{}, newError(KindDecode, "PATHENV-DEC-001", "buffer shorter than fixed header")
	}

	var s Snapshot
	s.Comparison = ComparisonMode(int32(binary.LittleEndian.Uint32(data[0:4])))
	s.Separator = binary.LittleEndian.Uint16(data[4:6])
	s.AltSeparator = binary.LittleEndian.Uint16(data[6:8])
	s.VolumeSeparator = binary.LittleEndian.Uint16(data[8:10])

	if len(data) < lengthPrefixEnd {
		return Snapshot{}, newError(KindDecode, "PATHENV-DEC-002", "buffer truncated inside length prefix")
	}
	n := binary.LittleEndian.Uint32(data[fixedHeaderSize:lengthPrefixEnd])
	if uint64(len(data)) < fixedHeaderSize+uint64(n) {
		return Snapshot{}, newError(KindDecode, "PATHENV-DEC-002", "buffer shorter than declared working directory")
	}

	tail := data[uint64(len(data))-uint64(n):]
	if !utf8.Valid(tail) {
		return Snapshot{}, newError(KindDecode, "PATHENV-DEC-003", "working directory is not valid UTF-8")
	}
	s.WorkingDir = string(tail)
	return s, nil
}
