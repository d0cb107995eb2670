package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port           string
	Environment    string
	LoggingConfig  LoggingConfig
	PostgresConfig PostgresConfig
	RedisConfig    RedisConfig
	RoutingConfig  RoutingConfig
	GeocodeConfig  GeocodeConfig
	MapConfig      MapConfig
	WorkerEnabled  bool
	SeedPostgres   bool
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// PostgresConfig holds the optional airport-directory mirror connection.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds the route/geocode cache connection.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// RoutingConfig holds the external road-routing provider configuration.
type RoutingConfig struct {
	BaseURL       string
	Timeout       time.Duration
	MaxRetries    int
	HealthCron    string
	HealthTimeout time.Duration
}

// GeocodeConfig holds the geocoding provider configuration.
type GeocodeConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Language   string
	UserAgent  string
}

// MapConfig holds cosmetic map parameters forwarded to clients.
type MapConfig struct {
	TileURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	port := getEnv("PORT", "8080")
	environment := getEnv("ENVIRONMENT", "development")
	workerEnabled, _ := strconv.ParseBool(getEnv("WORKER_ENABLED", "true"))
	seedPostgres, _ := strconv.ParseBool(getEnv("SEED_POSTGRES", "true"))

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	postgresEnabled, _ := strconv.ParseBool(getEnv("DB_ENABLED", "false"))
	postgresConfig := PostgresConfig{
		Enabled:  postgresEnabled,
		Host:     getEnv("DB_HOST", "postgres"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "shipments"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "shipments"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	redisEnabled, _ := strconv.ParseBool(getEnv("REDIS_ENABLED", "false"))
	cacheTTL, err := time.ParseDuration(getEnv("REDIS_CACHE_TTL", "6h"))
	if err != nil {
		cacheTTL = 6 * time.Hour
	}
	redisConfig := RedisConfig{
		Enabled:  redisEnabled,
		Host:     getEnv("REDIS_HOST", "redis"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
		CacheTTL: cacheTTL,
	}

	routingTimeout, _ := time.ParseDuration(getEnv("ROUTING_TIMEOUT", "10s"))
	routingRetries, _ := strconv.Atoi(getEnv("ROUTING_MAX_RETRIES", "2"))
	healthTimeout, _ := time.ParseDuration(getEnv("ROUTING_HEALTH_TIMEOUT", "5s"))
	routingConfig := RoutingConfig{
		BaseURL:       getEnv("ROUTING_BASE_URL", "https://router.project-osrm.org"),
		Timeout:       routingTimeout,
		MaxRetries:    routingRetries,
		HealthCron:    getEnv("ROUTING_HEALTH_CRON", "@every 1m"),
		HealthTimeout: healthTimeout,
	}

	geocodeTimeout, _ := time.ParseDuration(getEnv("GEOCODE_TIMEOUT", "10s"))
	geocodeRetries, _ := strconv.Atoi(getEnv("GEOCODE_MAX_RETRIES", "2"))
	geocodeConfig := GeocodeConfig{
		BaseURL:    getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		Timeout:    geocodeTimeout,
		MaxRetries: geocodeRetries,
		Language:   getEnv("GEOCODE_LANGUAGE", "en"),
		UserAgent:  getEnv("GEOCODE_USER_AGENT", "shipment-route-api/1.0"),
	}

	mapConfig := MapConfig{
		TileURL: getEnv("MAP_TILE_URL", "https://tile.openstreetmap.org/{z}/{x}/{y}.png"),
	}

	return &Config{
		Port:           port,
		Environment:    environment,
		LoggingConfig:  loggingConfig,
		PostgresConfig: postgresConfig,
		RedisConfig:    redisConfig,
		RoutingConfig:  routingConfig,
		GeocodeConfig:  geocodeConfig,
		MapConfig:      mapConfig,
		WorkerEnabled:  workerEnabled,
		SeedPostgres:   seedPostgres,
	}, nil
}

// LoadTestConfig loads test configuration
func LoadTestConfig() *Config {
	return &Config{
		Port:        "8080",
		Environment: "test",
		PostgresConfig: PostgresConfig{
			Host:    getEnv("DB_HOST", "localhost"),
			Port:    getEnv("DB_PORT", "5432"),
			User:    getEnv("DB_USER", "shipments"),
			DBName:  getEnv("DB_NAME_TEST", "shipments_test"),
			SSLMode: getEnv("DB_SSLMODE", "disable"),
		},
		RedisConfig: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			CacheTTL: time.Minute,
		},
		RoutingConfig: RoutingConfig{
			BaseURL:       "http://localhost:5000",
			Timeout:       time.Second,
			HealthCron:    "@every 1m",
			HealthTimeout: time.Second,
		},
		GeocodeConfig: GeocodeConfig{
			BaseURL:   "http://localhost:8088",
			Timeout:   time.Second,
			Language:  "en",
			UserAgent: "shipment-route-api/test",
		},
		MapConfig: MapConfig{TileURL: "https://tile.openstreetmap.org/{z}/{x}/{y}.png"},
	}
}

// TestConfig returns a default test configuration
func TestConfig() *Config {
	cfg := LoadTestConfig()
	cfg.WorkerEnabled = false
	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}
