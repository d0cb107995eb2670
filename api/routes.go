package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/geocode"
	"github.com/gilby125/shipment-route-api/render"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, renderer *render.Renderer, geocoder *geocode.Client, cfg *config.Config) {
	// Setup middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Add CORS middleware to allow requests from the frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Airport directory routes
		v1.GET("/airports", GetAirports())
		v1.GET("/airports/nearest", GetNearestAirport())

		// Region classification
		v1.GET("/region", GetRegion())

		// Route computation
		v1.GET("/route", GetRoute())

		// Map rendering
		v1.POST("/map", RenderMap(renderer))

		// Geocoding routes
		v1.GET("/geocode", Geocode(geocoder))
		v1.GET("/geocode/reverse", ReverseGeocode(geocoder))
	}
}
