package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/geo"
	"github.com/gilby125/shipment-route-api/route"
)

func main() {
	// Create MCP server
	s := server.NewMCPServer(
		"shipment-route-mcp",
		"1.0.0",
		server.WithLogging(),
	)

	registerComputeRoute(s)
	registerFindAirport(s)
	registerClassifyRegion(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func coordArgs(argsMap map[string]interface{}, latKey, lngKey string) (geo.Point, error) {
	lat, ok := argsMap[latKey].(float64)
	if !ok {
		return geo.Point{}, fmt.Errorf("%s is required and must be a number", latKey)
	}
	lng, ok := argsMap[lngKey].(float64)
	if !ok {
		return geo.Point{}, fmt.Errorf("%s is required and must be a number", lngKey)
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

func registerComputeRoute(s *server.MCPServer) {
	tool := mcp.NewTool("compute_route",
		mcp.WithDescription("Compute the transport mode and flight legs for a shipment between two coordinates"),
		mcp.WithNumber("from_lat",
			mcp.Description("Origin latitude in degrees"),
		),
		mcp.WithNumber("from_lng",
			mcp.Description("Origin longitude in degrees"),
		),
		mcp.WithNumber("to_lat",
			mcp.Description("Destination latitude in degrees"),
		),
		mcp.WithNumber("to_lng",
			mcp.Description("Destination longitude in degrees"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		from, err := coordArgs(argsMap, "from_lat", "from_lng")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := coordArgs(argsMap, "to_lat", "to_lng")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		flightRoute := route.FlightRoute(from, to)
		result := map[string]interface{}{
			"mode":             "land",
			"trip_distance_km": route.TripDistanceKm(from, to),
			"airports":         flightRoute,
		}
		if len(flightRoute) > 0 {
			result["mode"] = "air"
			result["flight_distance_km"] = route.FlightDistanceKm(flightRoute)
		}

		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error formatting result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func registerFindAirport(s *server.MCPServer) {
	tool := mcp.NewTool("find_airport",
		mcp.WithDescription("Find the best cargo airport for a coordinate, preferring hubs in the same region"),
		mcp.WithNumber("lat",
			mcp.Description("Latitude in degrees"),
		),
		mcp.WithNumber("lng",
			mcp.Description("Longitude in degrees"),
		),
		mcp.WithString("region",
			mcp.Description("Region code override (e.g., WESTERN_EUROPE). Defaults to the classified region of the coordinate."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		point, err := coordArgs(argsMap, "lat", "lng")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		region, _ := argsMap["region"].(string)
		if region == "" {
			region = airports.RegionFromCoords(point.Lat, point.Lng)
		}

		jsonBytes, err := json.MarshalIndent(map[string]interface{}{
			"airport": airports.FindBestAirport(point, region),
			"region":  region,
		}, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error formatting result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func registerClassifyRegion(s *server.MCPServer) {
	tool := mcp.NewTool("classify_region",
		mcp.WithDescription("Classify a coordinate into a shipping region code"),
		mcp.WithNumber("lat",
			mcp.Description("Latitude in degrees"),
		),
		mcp.WithNumber("lng",
			mcp.Description("Longitude in degrees"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("Invalid arguments format"), nil
		}

		point, err := coordArgs(argsMap, "lat", "lng")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(airports.RegionFromCoords(point.Lat, point.Lng)), nil
	})
}
