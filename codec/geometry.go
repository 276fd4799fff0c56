package codec

import (
	"fmt"

	"github.com/unkn0wn-root/polyline"
)

// Geometry serializes coordinate sequences as the encoded-polyline ASCII
// string itself. It is the most compact representation this module has for
// point sequences (roughly 4-6 bytes per point for typical road geometry,
// versus ~40 for JSON), and the bytes double as the wire form mapping APIs
// exchange.
//
// Decode runs the character-class check before parsing so byte stores shared
// with other writers fail fast on foreign entries instead of producing
// garbage coordinates.
type Geometry struct{}

var _ Codec[[]polyline.Position] = Geometry{}

func (Geometry) Encode(pts []polyline.Position) ([]byte, error) {
	return []byte(polyline.Encode(pts)), nil
}

func (Geometry) Decode(b []byte) ([]polyline.Position, error) {
	if len(b) == 0 {
		return nil, nil
	}
	s := string(b)
	if !polyline.IsValidEncoding(s) {
		return nil, fmt.Errorf("geometry payload is not a polyline encoding")
	}
	return polyline.Decode(s)
}
