package render

import "github.com/gilby125/shipment-route-api/geo"

// Zoom limits. fitMaxZoom caps the post-fit zoom so tall flight arcs stay
// inside the viewport.
const (
	singlePointZoom = 10
	fitMaxZoom      = 10
	worldZoom       = 2
)

// fitPadding inflates the fitted bounding box span before the zoom lookup,
// standing in for the pixel padding a map widget would apply.
const fitPadding = 1.2

// Viewport is the initial camera for the map widget. TileURL is the raster
// tile template the client should draw, purely cosmetic.
type Viewport struct {
	Center  geo.Point `json:"center"`
	Zoom    int       `json:"zoom"`
	TileURL string    `json:"tile_url"`
}

// zoomForDelta maps the larger of the lat/lng deltas between two endpoints
// to an initial zoom level via fixed breakpoints.
func zoomForDelta(delta float64) int {
	switch {
	case delta < 1:
		return 8
	case delta < 5:
		return 6
	case delta < 15:
		return 5
	case delta < 40:
		return 4
	default:
		return 3
	}
}

// fitZoom extends the same breakpoints downward so small fitted boxes can
// zoom past the initial scale, up to fitMaxZoom.
func fitZoom(span float64) int {
	switch {
	case span < 0.1:
		return 10
	case span < 0.5:
		return 9
	case span < 1:
		return 8
	case span < 2:
		return 7
	case span < 5:
		return 6
	case span < 15:
		return 5
	case span < 40:
		return 4
	default:
		return 3
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// initialViewport centers between the two endpoints using raw latitudes
// and normalized longitudes, zoomed by the larger coordinate delta.
func initialViewport(a, b geo.Point, tileURL string) Viewport {
	latDelta := abs(a.Lat - b.Lat)
	lngDelta := abs(geo.NormalizeLng(a.Lng) - geo.NormalizeLng(b.Lng))

	return Viewport{
		Center:  geo.Midpoint(a, b),
		Zoom:    zoomForDelta(maxFloat(latDelta, lngDelta)),
		TileURL: tileURL,
	}
}

// singlePointViewport centers on the only known endpoint at a fixed zoom.
func singlePointViewport(p geo.Point, tileURL string) Viewport {
	return Viewport{
		Center:  geo.Point{Lat: p.Lat, Lng: geo.NormalizeLng(p.Lng)},
		Zoom:    singlePointZoom,
		TileURL: tileURL,
	}
}

// worldViewport is the placeholder camera when no location data exists.
func worldViewport(tileURL string) Viewport {
	return Viewport{Center: geo.Point{Lat: 20, Lng: 0}, Zoom: worldZoom, TileURL: tileURL}
}

// fitViewport refits the camera to the bounding box of all route geometry,
// with padding, capped at fitMaxZoom.
func fitViewport(b geo.Bounds, tileURL string) Viewport {
	span := maxFloat(b.LatSpan(), b.LngSpan()) * fitPadding

	zoom := fitZoom(span)
	if zoom > fitMaxZoom {
		zoom = fitMaxZoom
	}
	return Viewport{Center: b.Center(), Zoom: zoom, TileURL: tileURL}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
