package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gilby125/shipment-route-api/api"
	"github.com/gilby125/shipment-route-api/cache"
	"github.com/gilby125/shipment-route-api/config"
	"github.com/gilby125/shipment-route-api/db"
	"github.com/gilby125/shipment-route-api/geocode"
	"github.com/gilby125/shipment-route-api/render"
	"github.com/gilby125/shipment-route-api/roadrouting"
	"github.com/gilby125/shipment-route-api/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("Configuration loaded successfully")

	// The Postgres mirror is optional; route computation runs entirely off
	// the in-process directory.
	if cfg.PostgresConfig.Enabled {
		postgresDB, err := db.NewPostgresDB(cfg.PostgresConfig)
		if err != nil {
			log.Printf("Postgres mirror unavailable, continuing without it: %v", err)
		} else {
			defer postgresDB.Close()
			if err := postgresDB.InitSchema(); err != nil {
				log.Fatalf("Failed to initialize PostgreSQL schema: %v", err)
			}
			if cfg.SeedPostgres {
				log.Println("Seeding airport directory mirror...")
				if err := postgresDB.SeedAirports(context.Background()); err != nil {
					log.Fatalf("Failed to seed airports: %v", err)
				}
			}
		}
	}

	// The Redis cache is also optional; a nil cache degrades every lookup
	// to a miss.
	var routeCache *cache.Cache
	if cfg.RedisConfig.Enabled {
		routeCache, err = cache.New(cfg.RedisConfig)
		if err != nil {
			log.Printf("Redis cache unavailable, continuing without it: %v", err)
			routeCache = nil
		} else {
			defer routeCache.Close()
		}
	}

	// Road routing with its background health monitor
	roadClient := roadrouting.New(cfg.RoutingConfig, routeCache, nil)
	if cfg.WorkerEnabled {
		monitor := worker.NewHealthMonitor(cfg.RoutingConfig, roadClient)
		roadClient = roadrouting.New(cfg.RoutingConfig, routeCache, monitor)
		if err := monitor.Start(); err != nil {
			log.Fatalf("Failed to start health monitor: %v", err)
		}
		defer monitor.Stop()
	}

	renderer := render.NewRenderer(roadClient, cfg.MapConfig.TileURL)
	geocoder := geocode.New(cfg.GeocodeConfig, routeCache)

	// Initialize API router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	api.RegisterRoutes(router, renderer, geocoder, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
