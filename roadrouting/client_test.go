package roadrouting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilby125/shipment-route-api/cache"
	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/geo"
)

const osrmOK = `{"code":"Ok","routes":[{"geometry":{"coordinates":[[2.35,48.85],[2.40,48.90],[2.45,48.95]]}}]}`

func newClient(t *testing.T, baseURL string, c *cache.Cache, h Health) *Client {
	t.Helper()
	return New(config.RoutingConfig{BaseURL: baseURL, Timeout: time.Second, MaxRetries: 0}, c, h)
}

func TestRoadRouteConvertsLngLatOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))
		w.Write([]byte(osrmOK))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, nil, nil)
	points, err := client.RoadRoute(context.Background(), geo.Point{Lat: 48.85, Lng: 2.35}, geo.Point{Lat: 48.95, Lng: 2.45})
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, geo.Point{Lat: 48.85, Lng: 2.35}, points[0])
	assert.Equal(t, geo.Point{Lat: 48.95, Lng: 2.45}, points[2])
}

func TestRoadRouteNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no segment", http.StatusBadRequest)
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, nil, nil)
	_, err := client.RoadRoute(context.Background(), geo.Point{Lat: 1, Lng: 1}, geo.Point{Lat: 2, Lng: 2})
	assert.Error(t, err)
}

func TestRoadRouteMalformedPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[]}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, nil, nil)
	_, err := client.RoadRoute(context.Background(), geo.Point{Lat: 1, Lng: 1}, geo.Point{Lat: 2, Lng: 2})
	assert.Error(t, err)
}

func TestRoadRouteUsesCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(osrmOK))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	host, port, _ := strings.Cut(mr.Addr(), ":")
	redisCache, err := cache.New(config.RedisConfig{Host: host, Port: port, CacheTTL: time.Minute})
	require.NoError(t, err)
	defer redisCache.Close()

	client := newClient(t, srv.URL, redisCache, nil)
	from, to := geo.Point{Lat: 48.85, Lng: 2.35}, geo.Point{Lat: 48.95, Lng: 2.45}

	first, err := client.RoadRoute(context.Background(), from, to)
	require.NoError(t, err)
	second, err := client.RoadRoute(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), hits.Load())
}

type staticHealth bool

func (h staticHealth) Healthy() bool { return bool(h) }

func TestRoadRouteFailsFastWhenProviderDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued while the provider is marked down")
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, nil, staticHealth(false))
	_, err := client.RoadRoute(context.Background(), geo.Point{Lat: 1, Lng: 1}, geo.Point{Lat: 2, Lng: 2})
	assert.ErrorIs(t, err, ErrProviderDown)
}

func TestPing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[]}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL, nil, nil)
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
