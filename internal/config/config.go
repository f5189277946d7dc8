/*
Package config loads application settings from the environment.
A .env file is honored when present so local development matches
the deployed configuration surface.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every runtime setting the application needs.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// DatabaseURL is the postgres connection string used by pgxpool.
	DatabaseURL string

	// GeminiAPIKey authenticates calls to the Generative Language API.
	GeminiAPIKey string

	// JWTSecret signs access tokens for the persistence endpoints.
	JWTSecret string

	// Timezone resolves the calendar day used for tracking buckets.
	// Defaults to UTC so "today" never depends on the host clock's zone.
	Timezone *time.Location
}

// NewFromEnv builds a Config from environment variables.
// Required settings missing from the environment return an error
// so the process fails at startup instead of mid-request.
func NewFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	port := 8080
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid PORT value %q", raw)
		}
		port = p
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	tz := time.UTC
	if name := os.Getenv("TIMEZONE"); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
		}
		tz = loc
	}

	return &Config{
		Port:         port,
		DatabaseURL:  dbURL,
		GeminiAPIKey: geminiKey,
		JWTSecret:    jwtSecret,
		Timezone:     tz,
	}, nil
}
