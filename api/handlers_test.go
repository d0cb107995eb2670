package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/geo"
	"github.com/gilby125/shipment-route-api/geocode"
	"github.com/gilby125/shipment-route-api/render"
)

type stubRouter struct{}

func (stubRouter) RoadRoute(ctx context.Context, from, to geo.Point) ([]geo.Point, error) {
	return []geo.Point{from, to}, nil
}

func testEngine(t *testing.T, geocodeBase string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.TestConfig()
	renderer := render.NewRenderer(stubRouter{}, cfg.MapConfig.TileURL)
	geocoder := geocode.New(config.GeocodeConfig{
		BaseURL: geocodeBase, Timeout: time.Second, Language: "en", UserAgent: "t",
	}, nil)

	router := gin.New()
	RegisterRoutes(router, renderer, geocoder, cfg)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w, payload
}

func TestHealthEndpoint(t *testing.T) {
	router := testEngine(t, "http://unused")
	w, payload := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestGetAirports(t *testing.T) {
	router := testEngine(t, "http://unused")

	w, payload := doRequest(t, router, http.MethodGet, "/api/v1/airports", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Greater(t, payload["count"].(float64), 50.0)

	w, payload = doRequest(t, router, http.MethodGet, "/api/v1/airports?region=TURKEY", "")
	require.Equal(t, http.StatusOK, w.Code)
	airports := payload["airports"].([]interface{})
	require.NotEmpty(t, airports)
	for _, a := range airports {
		assert.Equal(t, "TURKEY", a.(map[string]interface{})["region"])
	}
}

func TestGetNearestAirport(t *testing.T) {
	router := testEngine(t, "http://unused")

	w, payload := doRequest(t, router, http.MethodGet, "/api/v1/airports/nearest?lat=51.50&lng=-0.12", "")
	require.Equal(t, http.StatusOK, w.Code)
	airport := payload["airport"].(map[string]interface{})
	assert.Equal(t, "LHR", airport["code"])
	assert.Equal(t, "WESTERN_EUROPE", payload["region"])

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/airports/nearest?lat=abc&lng=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRegion(t *testing.T) {
	router := testEngine(t, "http://unused")

	w, payload := doRequest(t, router, http.MethodGet, "/api/v1/region?lat=41.0&lng=29.0", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TURKEY", payload["region"])

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/region?lat=41.0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRouteLand(t *testing.T) {
	router := testEngine(t, "http://unused")

	// Paris to Munich: same regional group, under the distance threshold.
	w, payload := doRequest(t, router,
		http.MethodGet, "/api/v1/route?from_lat=48.85&from_lng=2.35&to_lat=48.13&to_lng=11.58", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "land", payload["mode"])
	assert.Empty(t, payload["airport_codes"])
}

func TestGetRouteAir(t *testing.T) {
	router := testEngine(t, "http://unused")

	w, payload := doRequest(t, router,
		http.MethodGet, "/api/v1/route?from_lat=40.71&from_lng=-74.00&to_lat=51.50&to_lng=-0.12", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "air", payload["mode"])

	codes := payload["airport_codes"].([]interface{})
	require.Len(t, codes, 2)
	assert.Equal(t, "EWR", codes[0])
	assert.Equal(t, "LHR", codes[1])
	assert.Greater(t, payload["flight_distance_km"].(float64), 5000.0)
}

func TestRenderMapEndpoint(t *testing.T) {
	router := testEngine(t, "http://unused")

	body := `{
		"current_location": {"lat": 48.85, "lng": 2.35},
		"delivery_coords": {"lat": 48.13, "lng": 11.58},
		"delivery_address": "Munich"
	}`
	w, payload := doRequest(t, router, http.MethodPost, "/api/v1/map", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, payload["build_id"])

	m := payload["map"].(map[string]interface{})
	assert.Equal(t, false, m["placeholder"])
	assert.Len(t, m["markers"].([]interface{}), 6)
	summary := m["summary"].(map[string]interface{})
	assert.Equal(t, "land", summary["mode"])
}

func TestRenderMapRejectsBadBody(t *testing.T) {
	router := testEngine(t, "http://unused")
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/map", `{"current_location": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeocodeEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"52.52","lon":"13.40","display_name":"Berlin"}]`))
	}))
	defer srv.Close()

	router := testEngine(t, srv.URL)
	w, payload := doRequest(t, router, http.MethodGet, "/api/v1/geocode?city=Berlin", "")
	require.Equal(t, http.StatusOK, w.Code)
	point := payload["point"].(map[string]interface{})
	assert.InDelta(t, 52.52, point["lat"].(float64), 1e-9)
}

func TestGeocodeEndpointRequiresAddress(t *testing.T) {
	router := testEngine(t, "http://unused")
	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/geocode", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeocodeEndpointNoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	router := testEngine(t, srv.URL)
	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/geocode?city=Atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReverseGeocodeEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lat":"51.5","lon":"-0.12","display_name":"London"}`))
	}))
	defer srv.Close()

	router := testEngine(t, srv.URL)
	w, payload := doRequest(t, router, http.MethodGet, "/api/v1/geocode/reverse?lat=51.5&lng=-0.12", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "London", payload["display_name"])
}
