// Package wire frames cached shape entries so reads can tell a healthy entry
// from a foreign or corrupt one without decoding the geometry first.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("shapecache: corrupt entry")
	magic4     = [...]byte{'P', 'S', 'H', 'P'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame: magic(4) | ver(1) | points(u32 be) | payload(rest)
//
// points is the decoded point count of the payload; a mismatch between the
// two is treated as corruption by the cache. The payload length is implied by
// the entry length - providers are byte-transparent, so no inner length
// prefix is needed and trailing junk is impossible to represent.
func EncodeFrame(points uint32, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], points)
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func DecodeFrame(b []byte) (points uint32, payload []byte, err error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	points = binary.BigEndian.Uint32(b[5:9])
	return points, b[hdr:], nil
}
