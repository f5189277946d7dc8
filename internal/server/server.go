/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the
handlers onto the router.
*/
package server

import (
	"fmt"
	"net/http"
	"time"

	"nutriplan/internal/auth"
	"nutriplan/internal/chat"
	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/food"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/tracking"
	"nutriplan/internal/user"
)

// Server bundles the configuration and handler dependencies behind the
// router.
type Server struct {
	cfg *config.Config
	db  *database.Service

	generator *mealplan.Generator
	assistant *chat.Assistant

	authHandler     *auth.Handler
	userHandler     *user.Handler
	trackingHandler *tracking.Handler
	foodHandler     *food.Handler
	historyHandler  *chat.HistoryHandler

	startTime time.Time
}

// Deps carries everything the server needs, constructed in main.
type Deps struct {
	Config    *config.Config
	DB        *database.Service
	Generator *mealplan.Generator
	Assistant *chat.Assistant
}

// NewServer builds the application router and returns a configured
// *http.Server with production network timeouts.
func NewServer(deps Deps) (*http.Server, error) {
	queries := deps.DB.Queries()

	foodHandler, err := food.NewHandler(queries)
	if err != nil {
		return nil, fmt.Errorf("food handler: %w", err)
	}

	app := &Server{
		cfg:             deps.Config,
		db:              deps.DB,
		generator:       deps.Generator,
		assistant:       deps.Assistant,
		authHandler:     auth.NewHandler(queries, auth.NewTokenIssuer(deps.Config.JWTSecret)),
		userHandler:     user.NewHandler(queries, deps.Config.Timezone),
		trackingHandler: tracking.NewHandler(queries, deps.Config.Timezone),
		foodHandler:     foodHandler,
		historyHandler:  chat.NewHistoryHandler(queries, deps.Config.Timezone),
		startTime:       time.Now(),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", deps.Config.Port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
