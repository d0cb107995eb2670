package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/geo"
	"github.com/gilby125/shipment-route-api/geocode"
	"github.com/gilby125/shipment-route-api/render"
	"github.com/gilby125/shipment-route-api/route"
)

// renderWaitTimeout bounds how long a map request waits for road segments
// before returning whatever has been drawn so far.
const renderWaitTimeout = 10 * time.Second

// MapRequest represents a map rendering request
type MapRequest struct {
	CurrentLocation *geo.Point `json:"current_location"`
	DeliveryCoords  *geo.Point `json:"delivery_coords"`
	DeliveryAddress string     `json:"delivery_address"`
	IsReturnRoute   bool       `json:"is_return_route"`
}

// GeocodeRequest represents a structured address lookup
type GeocodeRequest struct {
	Street     string `form:"street"`
	City       string `form:"city"`
	PostalCode string `form:"postal_code"`
	Country    string `form:"country"`
}

func queryPoint(c *gin.Context, latKey, lngKey string) (geo.Point, bool) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing " + latKey})
		return geo.Point{}, false
	}
	lng, err := strconv.ParseFloat(c.Query(lngKey), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing " + lngKey})
		return geo.Point{}, false
	}
	return geo.Point{Lat: lat, Lng: lng}, true
}

// GetAirports returns a handler listing the airport directory, optionally
// filtered by region code.
func GetAirports() gin.HandlerFunc {
	return func(c *gin.Context) {
		directory := airports.Directory()
		if region := c.Query("region"); region != "" {
			filtered := make([]airports.Airport, 0, len(directory))
			for _, a := range directory {
				if a.Region == region {
					filtered = append(filtered, a)
				}
			}
			directory = filtered
		}
		c.JSON(http.StatusOK, gin.H{"airports": directory, "count": len(directory)})
	}
}

// GetNearestAirport returns a handler resolving the best departure or
// arrival airport for a coordinate.
func GetNearestAirport() gin.HandlerFunc {
	return func(c *gin.Context) {
		point, ok := queryPoint(c, "lat", "lng")
		if !ok {
			return
		}
		region := c.Query("region")
		if region == "" {
			region = airports.RegionFromCoords(point.Lat, point.Lng)
		}
		c.JSON(http.StatusOK, gin.H{
			"airport": airports.FindBestAirport(point, region),
			"region":  region,
		})
	}
}

// GetRegion returns a handler classifying a coordinate into a region code.
func GetRegion() gin.HandlerFunc {
	return func(c *gin.Context) {
		point, ok := queryPoint(c, "lat", "lng")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"region": airports.RegionFromCoords(point.Lat, point.Lng)})
	}
}

// GetRoute returns a handler computing the transport mode and flight legs
// between two coordinates.
func GetRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		from, ok := queryPoint(c, "from_lat", "from_lng")
		if !ok {
			return
		}
		to, ok := queryPoint(c, "to_lat", "to_lng")
		if !ok {
			return
		}

		flightRoute := route.FlightRoute(from, to)
		mode := "land"
		codes := make([]string, 0, len(flightRoute))
		for _, a := range flightRoute {
			codes = append(codes, a.Code)
		}
		resp := gin.H{
			"trip_distance_km": route.TripDistanceKm(from, to),
			"airports":         flightRoute,
			"airport_codes":    codes,
		}
		if len(flightRoute) > 0 {
			mode = "air"
			resp["flight_distance_km"] = route.FlightDistanceKm(flightRoute)
		}
		resp["mode"] = mode
		c.JSON(http.StatusOK, resp)
	}
}

// RenderMap returns a handler that renders a tracking context into map
// primitives. It waits a bounded time for road segments; a slow provider
// degrades the response to markers and arcs rather than failing it.
func RenderMap(renderer *render.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MapRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		b := renderer.Render(c.Request.Context(), render.TrackingContext{
			CurrentLocation: req.CurrentLocation,
			DeliveryCoords:  req.DeliveryCoords,
			DeliveryAddress: req.DeliveryAddress,
			IsReturnRoute:   req.IsReturnRoute,
		})

		done := make(chan struct{})
		go func() {
			b.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(renderWaitTimeout):
		}

		c.JSON(http.StatusOK, gin.H{"build_id": b.ID, "map": b.Snapshot()})
	}
}

// Geocode returns a handler resolving a structured address to coordinates.
func Geocode(geocoder *geocode.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GeocodeRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if req.Street == "" && req.City == "" && req.PostalCode == "" && req.Country == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one address field is required"})
			return
		}

		point, err := geocoder.Geocode(c.Request.Context(), geocode.Address{
			Street:     req.Street,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		})
		if errors.Is(err, geocode.ErrNoResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address could not be resolved"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Geocoding failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"point": point})
	}
}

// ReverseGeocode returns a handler resolving a coordinate to a display
// address.
func ReverseGeocode(geocoder *geocode.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		point, ok := queryPoint(c, "lat", "lng")
		if !ok {
			return
		}

		name, err := geocoder.Reverse(c.Request.Context(), point)
		if errors.Is(err, geocode.ErrNoResult) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No address at this location"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Reverse geocoding failed: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"display_name": name})
	}
}
