// Package geo provides distance and bounds math over decoded geometries.
package geo

import (
	"math"

	"github.com/unkn0wn-root/polyline"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in meters between two points.
func Haversine(from, to polyline.Position) float64 {
	dLat := toRad(to.Lat - from.Lat)
	dLon := toRad(to.Lon - from.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Lat))*math.Cos(toRad(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * 1000 // meters
}

// PathLength returns the length in meters of a geometry, summed segment by
// segment. Fewer than two points means zero length.
func PathLength(points []polyline.Position) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Haversine(points[i-1], points[i])
	}
	return total
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// BoundsOf returns the tight bounding box of a geometry. ok is false for an
// empty geometry.
func BoundsOf(points []polyline.Position) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b = Bounds{
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
	}
	for _, p := range points[1:] {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	return b, true
}

// Contains reports whether p lies within the box (inclusive).
func (b Bounds) Contains(p polyline.Position) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
