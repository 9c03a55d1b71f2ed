// Package wire frames decode-cache entries. An entry binds a serialized
// payload to the SHA-256 of the raw registry bytes it was decoded from, so a
// cached decode can be validated against the bytes currently on disk.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1
	sumLen       = 32 // sha256.Size
)

var (
	ErrCorrupt = errors.New("runreg: corrupt cache entry")
	magic4     = [...]byte{'R', 'R', 'E', 'G'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | sum(32) | plen(u32 be) | payload(plen)
func EncodeEntry(sum [sumLen]byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + sumLen + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.Write(sum[:])

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry validates the framing and returns the content hash and
// payload. Trailing bytes after the payload are treated as corruption.
func DecodeEntry(b []byte) (sum [sumLen]byte, payload []byte, err error) {
	const hdr = 4 + 1 + sumLen + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return sum, nil, ErrCorrupt
	}

	off := 5
	copy(sum[:], b[off:off+sumLen])
	off += sumLen

	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen != len(b)-off {
		return sum, nil, ErrCorrupt
	}

	return sum, b[off:], nil
}
