package airports

import "github.com/gilby125/shipment-route-api/geo"

// FindBestAirport picks the airport serving a point within a region.
//
// Selection runs in three widening passes: hub airports in the region,
// then any airport in the region, then the whole directory. Each pass
// returns the entry nearest to p, ties resolved by directory order. The
// final pass guarantees a result for any finite input, so a region with no
// airports (or the RegionOther tag) silently degrades instead of failing.
func FindBestAirport(p geo.Point, region string) Airport {
	if best, ok := nearest(p, func(a Airport) bool { return a.Region == region && a.IsHub }); ok {
		return best
	}
	if best, ok := nearest(p, func(a Airport) bool { return a.Region == region }); ok {
		return best
	}
	best, _ := nearest(p, func(Airport) bool { return true })
	return best
}

// nearest returns the directory entry matching the filter that minimizes
// distance to p. Strict less-than keeps the first occurrence on ties.
func nearest(p geo.Point, match func(Airport) bool) (Airport, bool) {
	var (
		best     Airport
		bestDist float64
		found    bool
	)
	for _, a := range directory {
		if !match(a) {
			continue
		}
		d := geo.DistanceKm(p, geo.Point{Lat: a.Lat, Lng: a.Lng})
		if !found || d < bestDist {
			best = a
			bestDist = d
			found = true
		}
	}
	return best, found
}
