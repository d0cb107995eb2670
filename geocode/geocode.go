// Package geocode resolves delivery addresses to coordinates and back
// using a Nominatim-compatible public provider. Lookups degrade through a
// chain of progressively looser queries — structured address, free-form,
// postal code only, city only — accepting the first non-empty result.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	anyascii "github.com/anyascii/go"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/text/language"

	"github.com/gilby125/shipment-route-api/cache"
	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/geo"
)

// Address is a structured delivery address. All fields are optional;
// emptier addresses simply start further down the fallback chain.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a Address) freeform() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.City, a.PostalCode, a.Country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}

// ErrNoResult means every provider query in the chain came back empty.
var ErrNoResult = errors.New("no geocoding result")

// Client queries a Nominatim-style /search and /reverse API.
type Client struct {
	baseURL   string
	userAgent string
	lang      string
	client    *retryablehttp.Client
	cache     *cache.Cache
}

// New creates a geocoding client. The configured language is parsed as a
// BCP 47 tag and falls back to English when malformed. cache may be nil.
func New(cfg config.GeocodeConfig, c *cache.Cache) *Client {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		tag = language.English
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.MaxRetries
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.Timeout

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		lang:      tag.String(),
		client:    client,
		cache:     c,
	}
}

// searchResult is the subset of a Nominatim response entry we consume.
// Lat/lon arrive as strings.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves an address to a coordinate, walking the fallback chain
// until a provider query returns a result. Only a fully exhausted chain is
// an error.
func (c *Client) Geocode(ctx context.Context, addr Address) (geo.Point, error) {
	key := "geocode:" + strings.ToLower(addr.freeform())
	var cached geo.Point
	if c.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	for _, query := range c.queryChain(addr) {
		if len(query) == 0 {
			continue
		}
		point, ok, err := c.search(ctx, query)
		if err != nil {
			// Provider trouble on one rung of the chain is not fatal;
			// the next, looser query may hit a healthier code path.
			continue
		}
		if ok {
			c.cache.SetJSON(ctx, key, point)
			return point, nil
		}
	}
	return geo.Point{}, ErrNoResult
}

// queryChain builds the ordered provider queries for an address:
// structured, free-form, postal code only, city only.
func (c *Client) queryChain(addr Address) []url.Values {
	chain := make([]url.Values, 0, 4)

	structured := url.Values{}
	if addr.Street != "" {
		structured.Set("street", addr.Street)
	}
	if addr.City != "" {
		structured.Set("city", addr.City)
	}
	if addr.PostalCode != "" {
		structured.Set("postalcode", addr.PostalCode)
	}
	if addr.Country != "" {
		structured.Set("country", addr.Country)
	}
	chain = append(chain, structured)

	if freeform := addr.freeform(); freeform != "" {
		// ASCII-fold the free-form query; public providers handle plain
		// ASCII far more consistently than mixed scripts.
		q := url.Values{}
		q.Set("q", anyascii.Transliterate(freeform))
		chain = append(chain, q)
	}

	if addr.PostalCode != "" {
		q := url.Values{}
		q.Set("postalcode", addr.PostalCode)
		if addr.Country != "" {
			q.Set("country", addr.Country)
		}
		chain = append(chain, q)
	}

	if addr.City != "" {
		q := url.Values{}
		q.Set("city", addr.City)
		chain = append(chain, q)
	}

	return chain
}

func (c *Client) search(ctx context.Context, query url.Values) (geo.Point, bool, error) {
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("accept-language", c.lang)

	var results []searchResult
	if err := c.get(ctx, c.baseURL+"/search?"+query.Encode(), &results); err != nil {
		return geo.Point{}, false, err
	}
	if len(results) == 0 {
		return geo.Point{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("parse result latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("parse result longitude: %w", err)
	}
	return geo.Point{Lat: lat, Lng: lng}, true, nil
}

// Reverse resolves a coordinate to a display address.
func (c *Client) Reverse(ctx context.Context, p geo.Point) (string, error) {
	key := fmt.Sprintf("revgeocode:%.4f,%.4f", p.Lat, p.Lng)
	var cached string
	if c.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(p.Lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(p.Lng, 'f', -1, 64))
	query.Set("format", "json")
	query.Set("accept-language", c.lang)

	var result searchResult
	if err := c.get(ctx, c.baseURL+"/reverse?"+query.Encode(), &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", ErrNoResult
	}

	c.cache.SetJSON(ctx, key, result.DisplayName)
	return result.DisplayName, nil
}

func (c *Client) get(ctx context.Context, rawURL string, dest interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("geocode request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode request failed with status %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode geocode response: %w", err)
	}
	return nil
}
