// Package route decides how a shipment travels between two points: by road
// alone, or by air freight via selected departure/arrival airports with an
// optional refueling stop on ultra-long-haul legs.
package route

import (
	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/geo"
)

const (
	// landOnlyKm is the trip distance below which a shipment always stays
	// on the road, regardless of regions.
	landOnlyKm = 300

	// crossRegionLandKm is the trip distance below which even a
	// cross-region shipment stays on the road.
	crossRegionLandKm = 1500

	// refuelKm is the airport-to-airport distance at which a single
	// intermediate refueling hub is inserted.
	refuelKm = 12000
)

// regionPair keys the refueling-hub table. Pairs are stored in both orders
// at init so lookups are direction-independent.
type regionPair struct {
	a, b string
}

// refuelHubs maps hand-picked region pairs to the hub used as the single
// intermediate stop on legs past refuelKm. The table is intentionally a
// curated handful: region pairs absent here get no intermediate stop even
// on legs past the threshold.
var refuelHubs = map[regionPair]string{
	{airports.RegionSouthAmerica, airports.RegionEastAsia}:          "DXB",
	{airports.RegionSouthAmerica, airports.RegionSoutheastAsia}:     "DXB",
	{airports.RegionSouthAmerica, airports.RegionSouthAsia}:         "DXB",
	{airports.RegionSouthAmerica, airports.RegionOceania}:           "SCL",
	{airports.RegionOceania, airports.RegionWesternEurope}:          "SIN",
	{airports.RegionOceania, airports.RegionCentralEurope}:          "SIN",
	{airports.RegionOceania, airports.RegionTurkey}:                 "SIN",
	{airports.RegionNorthAmericaEast, airports.RegionSoutheastAsia}: "NRT",
}

func init() {
	for pair, hub := range refuelHubs {
		refuelHubs[regionPair{pair.b, pair.a}] = hub
	}
}

// FlightRoute returns the ordered airports an air-freight shipment passes
// through, or an empty route when the trip ships by road alone.
//
// Land-only applies when the trip is shorter than landOnlyKm, when both
// endpoints classify into the same region, or when the trip stays under
// crossRegionLandKm — whether or not the two regions share a regional
// group. Otherwise departure and arrival airports are selected per
// airports.FindBestAirport and, past refuelKm of flight distance, a single
// refueling hub from the table above is inserted between them.
func FlightRoute(origin, destination geo.Point) []airports.Airport {
	tripDistance := geo.DistanceKm(origin, destination)
	if tripDistance < landOnlyKm {
		return nil
	}

	originRegion := airports.RegionFromCoords(origin.Lat, origin.Lng)
	destRegion := airports.RegionFromCoords(destination.Lat, destination.Lng)
	if originRegion == destRegion {
		return nil
	}
	if airports.SameRegionalGroup(originRegion, destRegion) && tripDistance < crossRegionLandKm {
		return nil
	}
	if tripDistance < crossRegionLandKm {
		return nil
	}

	departure := airports.FindBestAirport(origin, originRegion)
	arrival := airports.FindBestAirport(destination, destRegion)

	result := []airports.Airport{departure}

	flightDistance := geo.DistanceKm(
		geo.Point{Lat: departure.Lat, Lng: departure.Lng},
		geo.Point{Lat: arrival.Lat, Lng: arrival.Lng},
	)
	if flightDistance >= refuelKm {
		if code, ok := refuelHubs[regionPair{originRegion, destRegion}]; ok {
			if hub, found := airports.ByCode(code); found &&
				hub.Code != departure.Code && hub.Code != arrival.Code {
				result = append(result, hub)
			}
		}
	}

	if arrival.Code != departure.Code {
		result = append(result, arrival)
	}
	return result
}

// TripDistanceKm is a convenience wrapper used by API handlers to report
// the point-to-point distance alongside a computed route.
func TripDistanceKm(origin, destination geo.Point) float64 {
	return geo.DistanceKm(origin, destination)
}

// FlightDistanceKm sums the airport-to-airport leg distances of a route.
// It returns 0 for land-only routes.
func FlightDistanceKm(route []airports.Airport) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		total += geo.DistanceKm(
			geo.Point{Lat: route[i-1].Lat, Lng: route[i-1].Lng},
			geo.Point{Lat: route[i].Lat, Lng: route[i].Lng},
		)
	}
	return total
}
