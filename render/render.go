// Package render turns a computed shipment route into map primitives:
// markers, fetched road polylines, and synthetic flight arcs, all
// triplicated across longitude offsets so the path stays visible while the
// map pans across the antimeridian.
package render

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/geo"
	"github.com/gilby125/shipment-route-api/route"
)

// lngOffsets are the three world copies every marker and polyline is drawn
// on. The renderer targets tile layers without native seamless wraparound;
// drawing at -360/0/+360 keeps geometry visible regardless of which copy
// of the world the viewport centers on.
var lngOffsets = [3]float64{-360, 0, 360}

// arcSteps is the sample count of a synthetic flight arc.
const arcSteps = 64

// arcLift is the peak latitude displacement of a flight arc in degrees,
// applied as sin(t*pi)*arcLift to distinguish air legs from road legs.
const arcLift = 3.0

// TrackingContext is the renderer input: up to two known endpoints plus
// the return-shipment flag. IsReturnRoute swaps which endpoint acts as
// origin and which as destination; it does not change any distance or
// routing math.
type TrackingContext struct {
	CurrentLocation *geo.Point `json:"current_location"`
	DeliveryCoords  *geo.Point `json:"delivery_coords"`
	DeliveryAddress string     `json:"delivery_address"`
	IsReturnRoute   bool       `json:"is_return_route"`
}

// Marker is a labeled map pin.
type Marker struct {
	Kind     string    `json:"kind"` // "origin", "destination", "airport"
	Label    string    `json:"label"`
	Position geo.Point `json:"position"`
}

// Polyline is an ordered path drawn on the map.
type Polyline struct {
	Kind   string      `json:"kind"` // "road" or "flight"
	Points []geo.Point `json:"points"`
}

// Summary is the route metadata consumed by the UI shell alongside the
// drawn primitives.
type Summary struct {
	Mode             string   `json:"mode"` // "none", "land", "air"
	TripDistanceKm   float64  `json:"trip_distance_km"`
	FlightDistanceKm float64  `json:"flight_distance_km"`
	AirportCodes     []string `json:"airport_codes"`
}

// RenderedMap is a complete rendering of one tracking context. Road
// polylines may be appended after the initial build as fetches complete.
type RenderedMap struct {
	Markers     []Marker   `json:"markers"`
	Polylines   []Polyline `json:"polylines"`
	Viewport    Viewport   `json:"viewport"`
	Summary     Summary    `json:"summary"`
	Placeholder bool       `json:"placeholder"` // true when no location data exists
}

// RoadRouter fetches driving geometry between two points. Implemented by
// roadrouting.Client.
type RoadRouter interface {
	RoadRoute(ctx context.Context, from, to geo.Point) ([]geo.Point, error)
}

// Renderer owns at most one live Build at a time. Starting a new build
// cancels the previous one, which makes stale road-fetch completions
// discard themselves instead of mutating a superseded map.
type Renderer struct {
	router  RoadRouter
	tileURL string

	mu      sync.Mutex
	current *Build
}

// NewRenderer creates a renderer drawing on the given road router. The
// tile URL is cosmetic and passed through to the viewport payload.
func NewRenderer(router RoadRouter, tileURL string) *Renderer {
	return &Renderer{router: router, tileURL: tileURL}
}

// Build is one rendering of one tracking context. The markers, flight
// arcs, viewport, and summary are complete as soon as Render returns;
// road segments stream in asynchronously until Wait unblocks.
type Build struct {
	ID string

	renderer *Renderer
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	mu sync.Mutex
	m  RenderedMap
}

// Render starts a new build for the given context, canceling and
// superseding any build still in flight. The previous map is discarded
// and rebuilt from scratch rather than incrementally updated.
func (r *Renderer) Render(ctx context.Context, tc TrackingContext) *Build {
	buildCtx, cancel := context.WithCancel(ctx)
	b := &Build{
		ID:       uuid.New().String(),
		renderer: r,
		ctx:      buildCtx,
		cancel:   cancel,
	}

	r.mu.Lock()
	if r.current != nil {
		r.current.cancel()
	}
	r.current = b
	r.mu.Unlock()

	b.build(tc)
	return b
}

// isCurrent is the liveness check every async completion runs before
// touching render state.
func (r *Renderer) isCurrent(b *Build) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current == b
}

// Snapshot returns a copy of the rendered map as of now.
func (b *Build) Snapshot() RenderedMap {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := b.m
	m.Markers = append([]Marker(nil), b.m.Markers...)
	m.Polylines = append([]Polyline(nil), b.m.Polylines...)
	m.Summary.AirportCodes = append([]string(nil), b.m.Summary.AirportCodes...)
	return m
}

// Wait blocks until every road fetch of this build has completed or been
// abandoned.
func (b *Build) Wait() { b.wg.Wait() }

// Cancel abandons any in-flight road fetches. The build's synchronous
// geometry stays valid.
func (b *Build) Cancel() { b.cancel() }

// build computes everything derivable locally and dispatches road fetches.
func (b *Build) build(tc TrackingContext) {
	origin, destination := tc.resolve()

	switch {
	case origin == nil && destination == nil:
		b.m.Placeholder = true
		b.m.Viewport = worldViewport(b.renderer.tileURL)
		b.m.Summary.Mode = "none"
		return
	case origin == nil || destination == nil:
		known := origin
		kind, label := "origin", ""
		if known == nil {
			known = destination
			kind, label = "destination", tc.DeliveryAddress
		}
		b.addMarker(kind, label, *known)
		b.m.Viewport = singlePointViewport(*known, b.renderer.tileURL)
		b.m.Summary.Mode = "none"
		return
	}

	b.m.Viewport = initialViewport(*origin, *destination, b.renderer.tileURL)
	b.m.Summary.TripDistanceKm = route.TripDistanceKm(*origin, *destination)

	b.addMarker("origin", "", *origin)
	b.addMarker("destination", tc.DeliveryAddress, *destination)

	flightRoute := route.FlightRoute(*origin, *destination)
	if len(flightRoute) == 0 {
		b.m.Summary.Mode = "land"
		b.fetchRoadSegment(*origin, *destination)
		return
	}

	b.m.Summary.Mode = "air"
	b.m.Summary.FlightDistanceKm = route.FlightDistanceKm(flightRoute)
	for _, a := range flightRoute {
		b.m.Summary.AirportCodes = append(b.m.Summary.AirportCodes, a.Code)
		b.addMarker("airport", a.Code, geo.Point{Lat: a.Lat, Lng: a.Lng})
	}

	for i := 1; i < len(flightRoute); i++ {
		arc := flightArc(flightRoute[i-1], flightRoute[i])
		b.appendPolyline("flight", arc)
	}

	departure := flightRoute[0]
	arrival := flightRoute[len(flightRoute)-1]
	b.fetchRoadSegment(*origin, geo.Point{Lat: departure.Lat, Lng: departure.Lng})
	b.fetchRoadSegment(geo.Point{Lat: arrival.Lat, Lng: arrival.Lng}, *destination)
}

// resolve picks which endpoint is semantically the origin. A return
// shipment travels from the delivery address back to the current location.
func (tc TrackingContext) resolve() (origin, destination *geo.Point) {
	if tc.IsReturnRoute {
		return tc.DeliveryCoords, tc.CurrentLocation
	}
	return tc.CurrentLocation, tc.DeliveryCoords
}

// addMarker appends the marker on all three world copies and refits the
// viewport around the base positions.
func (b *Build) addMarker(kind, label string, p geo.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, offset := range lngOffsets {
		b.m.Markers = append(b.m.Markers, Marker{
			Kind:     kind,
			Label:    label,
			Position: geo.Point{Lat: p.Lat, Lng: p.Lng + offset},
		})
	}
}

// appendPolyline unwraps the path, appends it on all three world copies,
// and refits the viewport to cover the new geometry.
func (b *Build) appendPolyline(kind string, points []geo.Point) {
	if len(points) == 0 {
		return
	}
	unwrapped := geo.UnwrapCoordinates(points)

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, offset := range lngOffsets {
		shifted := make([]geo.Point, len(unwrapped))
		for i, p := range unwrapped {
			shifted[i] = geo.Point{Lat: p.Lat, Lng: p.Lng + offset}
		}
		b.m.Polylines = append(b.m.Polylines, Polyline{Kind: kind, Points: shifted})
	}

	b.refitLocked()
}

// refitLocked refits the viewport to the bounding box of all base-copy
// geometry. Callers must hold b.mu.
func (b *Build) refitLocked() {
	var points []geo.Point
	for i, m := range b.m.Markers {
		if i%len(lngOffsets) == 1 { // base copy only
			points = append(points, m.Position)
		}
	}
	for i, pl := range b.m.Polylines {
		if i%len(lngOffsets) == 1 {
			points = append(points, pl.Points...)
		}
	}
	if bounds, ok := geo.BoundsOf(points); ok {
		b.m.Viewport = fitViewport(bounds, b.renderer.tileURL)
	}
}

// fetchRoadSegment fetches driving geometry in the background. On failure
// the segment is simply omitted; markers and flight arcs already render.
func (b *Build) fetchRoadSegment(from, to geo.Point) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		points, err := b.renderer.router.RoadRoute(b.ctx, from, to)
		if err != nil {
			log.Printf("build %s: road segment (%.3f,%.3f)->(%.3f,%.3f) skipped: %v",
				b.ID, from.Lat, from.Lng, to.Lat, to.Lng, err)
			return
		}

		// Liveness check: the input may have changed while the fetch was
		// in flight. A canceled or superseded build discards the result.
		if b.ctx.Err() != nil || !b.renderer.isCurrent(b) {
			log.Printf("build %s: discarding stale road segment", b.ID)
			return
		}
		b.appendPolyline("road", points)
	}()
}

// flightArc synthesizes the curved air-leg polyline between two airports.
// The destination longitude is first folded to the shorter angular
// direction so the arc never runs the long way around the map.
func flightArc(from, to airports.Airport) []geo.Point {
	lat1, lng1 := from.Lat, from.Lng
	lat2, lng2 := to.Lat, to.Lng

	if delta := lng2 - lng1; delta > 180 {
		lng2 -= 360
	} else if delta < -180 {
		lng2 += 360
	}

	points := make([]geo.Point, 0, arcSteps+1)
	for i := 0; i <= arcSteps; i++ {
		t := float64(i) / arcSteps
		points = append(points, geo.Point{
			Lat: lat1 + (lat2-lat1)*t + math.Sin(t*math.Pi)*arcLift,
			Lng: lng1 + (lng2-lng1)*t,
		})
	}
	return points
}
