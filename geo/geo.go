// Package geo contains the coordinate math used by the route engine and the
// map renderer: haversine distances, longitude normalization, and path
// unwrapping across the antimeridian.
package geo

import "math"

// earthRadiusKm is the mean Earth radius. Distances are computed on a
// sphere; no ellipsoidal correction is applied.
const earthRadiusKm = 6371.0

// Point is a geographic coordinate in degrees. Lng may transiently exceed
// ±180 while a path is being unwrapped for rendering.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between a and b in
// kilometers using the haversine formula.
func DistanceKm(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// NormalizeLng folds a longitude into [-180, 180]. Idempotent.
func NormalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}

// UnwrapCoordinates walks a path and shifts each point by ∓360° of
// longitude whenever the delta to the previous point exceeds 180° in
// magnitude. A polyline crossing the antimeridian then draws as a short
// segment instead of a line spanning the whole map. The input is not
// modified.
func UnwrapCoordinates(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}

	out := make([]Point, len(points))
	out[0] = points[0]
	for i := 1; i < len(points); i++ {
		p := points[i]
		delta := p.Lng - out[i-1].Lng
		if delta > 180 {
			p.Lng -= 360
		} else if delta < -180 {
			p.Lng += 360
		}
		out[i] = p
	}
	return out
}

// Midpoint returns the midpoint of two points using raw latitudes and
// normalized longitudes. It is a viewport helper, not a geodesic midpoint.
func Midpoint(a, b Point) Point {
	return Point{
		Lat: (a.Lat + b.Lat) / 2,
		Lng: (NormalizeLng(a.Lng) + NormalizeLng(b.Lng)) / 2,
	}
}

// Bounds is an axis-aligned lat/lng bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Center returns the geometric center of the box.
func (b Bounds) Center() Point {
	return Point{Lat: (b.MinLat + b.MaxLat) / 2, Lng: (b.MinLng + b.MaxLng) / 2}
}

// LatSpan returns the latitude extent of the box in degrees.
func (b Bounds) LatSpan() float64 { return b.MaxLat - b.MinLat }

// LngSpan returns the longitude extent of the box in degrees.
func (b Bounds) LngSpan() float64 { return b.MaxLng - b.MinLng }

// Extend grows the box to include p.
func (b Bounds) Extend(p Point) Bounds {
	if p.Lat < b.MinLat {
		b.MinLat = p.Lat
	}
	if p.Lat > b.MaxLat {
		b.MaxLat = p.Lat
	}
	if p.Lng < b.MinLng {
		b.MinLng = p.Lng
	}
	if p.Lng > b.MaxLng {
		b.MaxLng = p.Lng
	}
	return b
}

// BoundsOf computes the bounding box of the given points. The second
// return value is false when points is empty.
func BoundsOf(points []Point) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLng: points[0].Lng, MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b, true
}
