package airports

import (
	"testing"

	"github.com/gilby125/shipment-route-api/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(lat, lng float64) geo.Point { return geo.Point{Lat: lat, Lng: lng} }

func TestFindBestAirportPrefersHubs(t *testing.T) {
	t.Parallel()

	// Boston is closer to BOS, but BOS is not flagged as a hub; the hub
	// pass must win before the any-airport pass is consulted.
	got := FindBestAirport(point(42.36, -71.06), RegionNorthAmericaEast)
	assert.Equal(t, "JFK", got.Code)
}

func TestFindBestAirportNewYorkPicksNewark(t *testing.T) {
	t.Parallel()

	// Manhattan is nearer to EWR than JFK; both are hubs.
	got := FindBestAirport(point(40.71, -74.00), RegionNorthAmericaEast)
	assert.Equal(t, "EWR", got.Code)
}

func TestFindBestAirportLondon(t *testing.T) {
	t.Parallel()

	got := FindBestAirport(point(51.50, -0.12), RegionWesternEurope)
	assert.Equal(t, "LHR", got.Code)
}

func TestFindBestAirportUnknownRegionFallsBackGlobally(t *testing.T) {
	t.Parallel()

	// No airports carry the OTHER tag, so selection widens to the whole
	// directory and still returns something deterministic.
	got := FindBestAirport(point(-17.5, -149.6), RegionOther) // Tahiti
	require.NotEmpty(t, got.Code)
	assert.Equal(t, "AKL", got.Code)
}

func TestFindBestAirportDegenerateOrigin(t *testing.T) {
	t.Parallel()

	// (0,0) classifies as OTHER; selection must still return exactly one
	// airport rather than failing.
	region := RegionFromCoords(0, 0)
	got := FindBestAirport(point(0, 0), region)
	assert.NotEmpty(t, got.Code)
}

func TestByCode(t *testing.T) {
	t.Parallel()

	a, ok := ByCode("SIN")
	require.True(t, ok)
	assert.Equal(t, "Singapore Changi", a.Name)
	assert.True(t, a.IsHub)

	_, ok = ByCode("XXX")
	assert.False(t, ok)
}
