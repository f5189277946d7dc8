package server

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &RequestValidator{validate: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(LoggerMiddleware)

	// Public routes
	e.GET("/health", s.healthHandler)
	e.GET("/health/system", s.systemHealthHandler)
	e.POST("/api/auth/signup", s.authHandler.SignupHandler)
	e.POST("/api/auth/login", s.authHandler.LoginHandler)
	e.POST("/api/generate-meal-plan", s.generatePlanHandler)
	e.POST("/api/chat", s.chatHandler)

	// Authenticated routes
	api := e.Group("/api")
	api.Use(s.authHandler.JwtAuthMiddleware)

	api.PUT("/account/name", s.userHandler.UpdateNameHandler)
	api.PUT("/account/password", s.userHandler.UpdatePasswordHandler)
	api.PUT("/account/email", s.userHandler.UpdateEmailHandler)

	api.PUT("/profile", s.userHandler.UpsertProfileHandler)
	api.GET("/profile", s.userHandler.GetProfileHandler)
	api.GET("/me/overview", s.userHandler.OverviewHandler)

	api.POST("/meal-plans", s.createMealPlanHandler)
	api.GET("/meal-plans", s.listMealPlansHandler)
	api.PUT("/meal-plans/active", s.setActiveMealPlanHandler)
	api.GET("/meal-plans/active", s.getActiveMealPlanHandler)
	api.GET("/meal-plans/:id", s.getMealPlanHandler)
	api.DELETE("/meal-plans/:id", s.deleteMealPlanHandler)
	api.POST("/meal-plans/:id/favorite", s.toggleFavoriteHandler)

	api.GET("/tracking/today", s.trackingHandler.GetTodayHandler)
	api.POST("/tracking/today", s.trackingHandler.InitTodayHandler)
	api.PUT("/tracking/today", s.trackingHandler.ReplaceTodayHandler)
	api.POST("/tracking/today/toggle", s.trackingHandler.ToggleMealHandler)
	api.GET("/tracking/history", s.trackingHandler.HistoryHandler)

	api.POST("/weights", s.trackingHandler.UpsertWeightHandler)
	api.GET("/weights", s.trackingHandler.ListWeightsHandler)
	api.GET("/weights/latest", s.trackingHandler.LatestWeightHandler)
	api.GET("/weights/:date", s.trackingHandler.WeightByDateHandler)

	api.GET("/foods", s.foodHandler.ListHandler)
	api.GET("/foods/category/:category", s.foodHandler.ByCategoryHandler)
	api.GET("/foods/search", s.foodHandler.SearchHandler)
	api.POST("/foods/seed", s.foodHandler.SeedHandler)

	api.POST("/chat/history", s.historyHandler.SaveHandler)
	api.GET("/chat/history", s.historyHandler.ListHandler)
	api.DELETE("/chat/history", s.historyHandler.ClearHandler)
	api.GET("/chat/history/today", s.historyHandler.TodayCountHandler)

	return e
}

func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		c.Set("logger", &logger)

		return next(c)
	}
}
