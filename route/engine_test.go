package route

import (
	"testing"

	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(route []airports.Airport) []string {
	out := make([]string, len(route))
	for i, a := range route {
		out[i] = a.Code
	}
	return out
}

func TestFlightRouteShortTripIsLandOnly(t *testing.T) {
	t.Parallel()

	// Rotterdam to Antwerp, ~80 km.
	got := FlightRoute(geo.Point{Lat: 51.92, Lng: 4.48}, geo.Point{Lat: 51.22, Lng: 4.40})
	assert.Empty(t, got)
}

func TestFlightRouteSameRegionOverridesDistance(t *testing.T) {
	t.Parallel()

	// Moscow to Novosibirsk: ~2800 km but both classify as Russia, so the
	// same-region rule wins over the cross-region distance threshold.
	moscow := geo.Point{Lat: 55.75, Lng: 37.62}
	novosibirsk := geo.Point{Lat: 55.03, Lng: 82.92}
	require.Greater(t, geo.DistanceKm(moscow, novosibirsk), 2000.0)

	assert.Empty(t, FlightRoute(moscow, novosibirsk))
}

func TestFlightRouteParisMunichLandOnly(t *testing.T) {
	t.Parallel()

	// Western and Central Europe share a regional group and the trip is
	// well under the cross-region threshold.
	got := FlightRoute(geo.Point{Lat: 48.85, Lng: 2.35}, geo.Point{Lat: 48.13, Lng: 11.58})
	assert.Empty(t, got)
}

func TestFlightRouteNewYorkLondon(t *testing.T) {
	t.Parallel()

	got := FlightRoute(geo.Point{Lat: 40.71, Lng: -74.00}, geo.Point{Lat: 51.50, Lng: -0.12})
	require.Len(t, got, 2)

	// Newark is marginally nearer to lower Manhattan than JFK.
	assert.Equal(t, "EWR", got[0].Code)
	assert.Equal(t, "LHR", got[1].Code)
}

func TestFlightRouteJohannesburgSydney(t *testing.T) {
	t.Parallel()

	got := FlightRoute(geo.Point{Lat: -26.20, Lng: 28.05}, geo.Point{Lat: -33.87, Lng: 151.21})
	require.NotEmpty(t, got)

	// Africa/Oceania is not in the refueling table, so the route stays
	// direct regardless of leg length.
	assert.Equal(t, []string{"JNB", "SYD"}, codes(got))
}

func TestFlightRouteInsertsRefuelingHub(t *testing.T) {
	t.Parallel()

	// Sao Paulo to Shanghai: the GRU-PVG leg is far past the refueling
	// threshold and South America/East Asia routes via Dubai.
	got := FlightRoute(geo.Point{Lat: -23.55, Lng: -46.63}, geo.Point{Lat: 31.23, Lng: 121.47})
	require.Len(t, got, 3)
	assert.Equal(t, []string{"GRU", "DXB", "PVG"}, codes(got))

	assert.GreaterOrEqual(t,
		geo.DistanceKm(geo.Point{Lat: got[0].Lat, Lng: got[0].Lng}, geo.Point{Lat: got[2].Lat, Lng: got[2].Lng}),
		12000.0)
}

func TestFlightRouteSydneyLondonViaSingapore(t *testing.T) {
	t.Parallel()

	got := FlightRoute(geo.Point{Lat: -33.87, Lng: 151.21}, geo.Point{Lat: 51.50, Lng: -0.12})
	assert.Equal(t, []string{"SYD", "SIN", "LHR"}, codes(got))
}

func TestFlightRouteCrossRegionUnderThresholdIsLandOnly(t *testing.T) {
	t.Parallel()

	// Berlin to Warsaw crosses no group boundary, but even a pair outside
	// any shared group ships by road under the threshold: Vienna to
	// Istanbul is Central Europe vs Turkey (shared group, ~1270 km) and
	// Chicago to Denver is East vs West North America (~1480 km).
	vienna := geo.Point{Lat: 48.21, Lng: 16.37}
	istanbul := geo.Point{Lat: 41.01, Lng: 28.98}
	assert.Empty(t, FlightRoute(vienna, istanbul))

	chicago := geo.Point{Lat: 41.88, Lng: -87.63}
	denver := geo.Point{Lat: 39.74, Lng: -104.99}
	require.Less(t, geo.DistanceKm(chicago, denver), 1500.0)
	assert.Empty(t, FlightRoute(chicago, denver))
}

func TestFlightDistanceKm(t *testing.T) {
	t.Parallel()

	assert.Zero(t, FlightDistanceKm(nil))

	route := FlightRoute(geo.Point{Lat: 40.71, Lng: -74.00}, geo.Point{Lat: 51.50, Lng: -0.12})
	require.Len(t, route, 2)
	assert.InDelta(t, 5550, FlightDistanceKm(route), 100)
}
