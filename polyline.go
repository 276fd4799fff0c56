package polyline

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	// scale is the fixed-point factor of the format. Not configurable.
	scale = 1e5

	// charOffset maps 5-bit chunks into the printable range '?'..'~'.
	charOffset = 63

	// continuation flags a chunk as non-final within one encoded value.
	continuation = 0x20

	chunkMask = 0x1f
	chunkBits = 5
)

// Position is a geographic coordinate in degrees (WGS 84). The wire order of
// the format - and of the JSON form - is [longitude, latitude]; keeping the
// axes named rather than positional is what prevents axis-swap bugs.
type Position struct {
	Lon float64
	Lat float64
}

// MarshalJSON encodes the position as the two-element array [lon, lat]
// (geographic-JSON convention).
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lon, p.Lat})
}

// UnmarshalJSON decodes a [lon, lat] two-element array.
func (p *Position) UnmarshalJSON(b []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	p.Lon, p.Lat = pair[0], pair[1]
	return nil
}

// Decode parses an encoded polyline into positions in traversal order.
// The empty string decodes to an empty sequence with no error.
//
// The decoder consumes alternating latitude/longitude deltas. If the string
// ends in the middle of a value (continuation bit set on the final byte) or
// after a latitude with no matching longitude, Decode returns an error
// wrapping ErrTruncated and no positions at all - a malformed tail makes the
// whole result suspect, so nothing is emitted.
//
// Decode does not verify the character class; callers holding untrusted input
// should pre-filter with IsValidEncoding. Bytes outside '?'..'~' produce
// deterministic (but meaningless) coordinates, same as the reference decoders
// of this format.
func Decode(s string) ([]Position, error) {
	if s == "" {
		return nil, nil
	}

	var lat, lng int64
	out := make([]Position, 0, len(s)/4)
	for i := 0; i < len(s); {
		dlat, n, err := decodeValue(s, i)
		if err != nil {
			return nil, err
		}
		i += n
		lat += dlat

		if i >= len(s) {
			return nil, &DecodeError{Offset: len(s), reason: ErrTruncated}
		}
		dlng, n, err := decodeValue(s, i)
		if err != nil {
			return nil, err
		}
		i += n
		lng += dlng

		out = append(out, Position{
			Lon: float64(lng) / scale,
			Lat: float64(lat) / scale,
		})
	}
	return out, nil
}

// decodeValue reads one zigzag-encoded delta starting at s[start] and returns
// the signed delta plus the number of bytes consumed.
func decodeValue(s string, start int) (int64, int, error) {
	var acc uint64
	var shift uint
	i := start
	for {
		if i >= len(s) {
			return 0, 0, &DecodeError{Offset: len(s), reason: ErrTruncated}
		}
		c := uint64(s[i]) - charOffset
		i++
		acc |= (c & chunkMask) << shift
		shift += chunkBits
		if c < continuation {
			break
		}
	}

	// un-zigzag: LSB carries the sign
	if acc&1 != 0 {
		return ^int64(acc >> 1), i - start, nil
	}
	return int64(acc >> 1), i - start, nil
}

// Encode is the inverse of Decode. Each coordinate is rounded to the 1e5
// fixed-point grid, so decode(encode(pts)) reproduces pts within 0.5e-5
// degrees per axis. Empty or nil input encodes to "".
func Encode(points []Position) string {
	var b strings.Builder
	var lat, lng int64
	for _, p := range points {
		ilat := int64(math.Round(p.Lat * scale))
		ilng := int64(math.Round(p.Lon * scale))
		encodeValue(&b, ilat-lat)
		encodeValue(&b, ilng-lng)
		lat, lng = ilat, ilng
	}
	return b.String()
}

// encodeValue writes one signed delta as zigzag + 5-bit chunks, low chunk
// first, continuation bit on every chunk but the last.
func encodeValue(b *strings.Builder, v int64) {
	u := uint64(v) << 1
	if v < 0 {
		u = ^u
	}
	for u >= continuation {
		b.WriteByte(byte(continuation|(u&chunkMask)) + charOffset)
		u >>= chunkBits
	}
	b.WriteByte(byte(u) + charOffset)
}

// String implements fmt.Stringer for debugging.
func (p Position) String() string {
	return fmt.Sprintf("[%g, %g]", p.Lon, p.Lat)
}
