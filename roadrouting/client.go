// Package roadrouting fetches driving geometry between two points from an
// OSRM-compatible public directions service. Fetches are best-effort by
// design: any failure means the caller simply draws no road segment.
package roadrouting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gilby125/shipment-route-api/cache"
	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/geo"
)

// Health reports whether the routing provider looked reachable on its last
// probe. A nil Health is treated as always healthy.
type Health interface {
	Healthy() bool
}

// ErrProviderDown is returned without issuing a request when the health
// monitor reports the provider unreachable.
var ErrProviderDown = errors.New("road routing provider is down")

type httpClient interface {
	Do(req *retryablehttp.Request) (*http.Response, error)
}

// Client talks to an OSRM-style /route/v1/driving endpoint.
type Client struct {
	baseURL string
	client  httpClient
	cache   *cache.Cache
	health  Health
}

func customRetryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				return false, ctx.Err()
			}
		}
		if resp == nil {
			return true, fmt.Errorf("response is nil")
		}
		// 4xx responses are terminal: the provider understood the request
		// and refused it, retrying would only burn the budget.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
}

// New creates a road-routing client. Both cache and health may be nil.
func New(cfg config.RoutingConfig, c *cache.Cache, health Health) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.Logger = nil
	client.CheckRetry = customRetryPolicy()
	client.HTTPClient.Timeout = cfg.Timeout

	return &Client{
		baseURL: cfg.BaseURL,
		client:  client,
		cache:   c,
		health:  health,
	}
}

// osrmResponse is the subset of the OSRM route response we consume. The
// provider returns coordinates in (lng, lat) order.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func cacheKey(from, to geo.Point) string {
	return fmt.Sprintf("roadroute:%.4f,%.4f:%.4f,%.4f", from.Lat, from.Lng, to.Lat, to.Lng)
}

// RoadRoute fetches the driving polyline from from to to, converted to
// (lat, lng) order. An empty geometry is an error so callers can treat
// every non-nil result as drawable.
func (c *Client) RoadRoute(ctx context.Context, from, to geo.Point) ([]geo.Point, error) {
	key := cacheKey(from, to)
	var cached []geo.Point
	if c.cache.GetJSON(ctx, key, &cached) && len(cached) > 0 {
		return cached, nil
	}

	if c.health != nil && !c.health.Healthy() {
		return nil, ErrProviderDown
	}

	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build road route request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch road route: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("road route request failed with status %d", res.StatusCode)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode road route response: %w", err)
	}
	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("no route in response (code %q)", decoded.Code)
	}

	coords := decoded.Routes[0].Geometry.Coordinates
	points := make([]geo.Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		// GeoJSON order is (lng, lat).
		points = append(points, geo.Point{Lat: c[1], Lng: c[0]})
	}
	if len(points) == 0 {
		return nil, errors.New("road route response has no usable geometry")
	}

	c.cache.SetJSON(ctx, key, points)
	return points, nil
}

// Ping issues a minimal route request to verify the provider is up. Used
// by the health monitor.
func (c *Client) Ping(ctx context.Context) error {
	// A fixed short hop; the geometry is irrelevant.
	url := fmt.Sprintf("%s/route/v1/driving/2.35,48.85;2.37,48.86?overview=false", c.baseURL)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping routing provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("routing provider ping returned status %d", res.StatusCode)
	}
	return nil
}
