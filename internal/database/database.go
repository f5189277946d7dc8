/*
Package database owns the postgres connection pool, the embedded schema
migrations, and every SQL query the application runs. Handlers never touch
the pool directly; they go through the Queries type.
*/
package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Service bundles the connection pool with the query layer.
type Service struct {
	pool *pgxpool.Pool
	q    *Queries
}

// NewService connects to postgres, applies pending migrations, and
// returns the ready-to-use service. The caller owns Close.
func NewService(ctx context.Context, databaseURL string) (*Service, error) {
	if err := RunMigrations(databaseURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}

	return &Service{pool: pool, q: New(pool)}, nil
}

// Queries exposes the SQL query layer.
func (s *Service) Queries() *Queries {
	return s.q
}

// Health reports the state of the connection pool for the health endpoints.
func (s *Service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.pool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Error().Err(err).Msg("database health check failed")
		return stats
	}

	poolStats := s.pool.Stat()
	stats["status"] = "up"
	stats["total_conns"] = strconv.Itoa(int(poolStats.TotalConns()))
	stats["idle_conns"] = strconv.Itoa(int(poolStats.IdleConns()))
	stats["acquired_conns"] = strconv.Itoa(int(poolStats.AcquiredConns()))
	stats["max_conns"] = strconv.Itoa(int(poolStats.MaxConns()))

	if poolStats.AcquiredConns() > (poolStats.MaxConns() * 8 / 10) {
		stats["message"] = "The database connection pool is experiencing heavy load."
	}

	return stats
}

// Close releases the connection pool.
func (s *Service) Close() {
	s.pool.Close()
}
