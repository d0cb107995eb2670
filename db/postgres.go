// Package db mirrors the static airport directory into PostgreSQL so
// reporting and ad-hoc queries can join shipment data against airport
// metadata. The in-process directory stays the source of truth.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/gilby125/shipment-route-api/airports"
	"github.com/gilby125/shipment-route-api/config"
)

// PostgresDB represents a PostgreSQL database connection
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg config.PostgresConfig) (*PostgresDB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

// Close closes the database connection
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

// GetDB returns the underlying database connection
func (p *PostgresDB) GetDB() *sql.DB {
	return p.db
}

// InitSchema creates the airports mirror table if it does not exist.
func (p *PostgresDB) InitSchema() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS airports (
			code VARCHAR(3) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			country VARCHAR(255) NOT NULL,
			region VARCHAR(32) NOT NULL,
			is_hub BOOLEAN NOT NULL DEFAULT FALSE,
			latitude DECIMAL(10, 6) NOT NULL,
			longitude DECIMAL(10, 6) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_airports_region ON airports(region);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SeedAirports upserts the full static directory. Safe to run on every
// startup; rows for retired codes are left in place.
func (p *PostgresDB) SeedAirports(ctx context.Context) error {
	seedCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	tx, err := p.db.BeginTx(seedCtx, nil)
	if err != nil {
		return fmt.Errorf("begin airport seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(seedCtx, `
		INSERT INTO airports (code, name, country, region, is_hub, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			region = EXCLUDED.region,
			is_hub = EXCLUDED.is_hub,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude
	`)
	if err != nil {
		return fmt.Errorf("prepare airport seed: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports.Directory() {
		if _, err := stmt.ExecContext(seedCtx, a.Code, a.Name, a.Country, a.Region, a.IsHub, a.Lat, a.Lng); err != nil {
			return fmt.Errorf("seed airport %s: %w", a.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit airport seed: %w", err)
	}
	return nil
}

// CountAirports returns the number of mirrored airport rows.
func (p *PostgresDB) CountAirports(ctx context.Context) (int, error) {
	var count int
	if err := p.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM airports").Scan(&count); err != nil {
		return 0, fmt.Errorf("count airports: %w", err)
	}
	return count, nil
}
