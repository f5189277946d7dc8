package tracking

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/auth"
	"nutriplan/internal/database"
)

const defaultHistoryDays = 7

// Handler owns the daily-tracking and weight-log endpoints.
type Handler struct {
	queries *database.Queries
	loc     *time.Location
	now     func() time.Time
}

// NewHandler wires tracking against storage and the configured
// timezone used for day bucketing.
func NewHandler(queries *database.Queries, loc *time.Location) *Handler {
	return &Handler{queries: queries, loc: loc, now: time.Now}
}

func (h *Handler) todayKey() string {
	return DayKey(h.now(), h.loc)
}

// InitTodayRequest seeds the day's checklist, usually from the active
// meal plan.
type InitTodayRequest struct {
	Meals []database.TrackedMeal `json:"meals" validate:"required"`
}

// ToggleMealRequest flips one checklist entry.
type ToggleMealRequest struct {
	MealIndex int `json:"mealIndex"`
}

// GetTodayHandler returns today's checklist, or null when the day has
// not been initialized yet.
func (h *Handler) GetTodayHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	row, err := h.queries.GetDailyTracking(ctx, userID, h.todayKey())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusOK, nil)
		}
		log.Error().Err(err).Msg("tracking lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load tracking"})
	}
	return c.JSON(http.StatusOK, row)
}

// InitTodayHandler creates today's checklist. Calling it again for the
// same day returns the existing row untouched.
func (h *Handler) InitTodayHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req InitTodayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	date := h.todayKey()
	if existing, err := h.queries.GetDailyTracking(ctx, userID, date); err == nil {
		return c.JSON(http.StatusOK, existing)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		log.Error().Err(err).Msg("tracking lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to initialize tracking"})
	}

	meals := make([]database.TrackedMeal, len(req.Meals))
	for i, m := range req.Meals {
		m.IsConsumed = false
		meals[i] = m
	}

	row, err := h.queries.InsertDailyTracking(ctx, userID, date, meals)
	if err != nil {
		log.Error().Err(err).Msg("tracking insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to initialize tracking"})
	}
	return c.JSON(http.StatusCreated, row)
}

// ReplaceTodayHandler swaps the day's meal list, used when the active
// plan changes mid-day. Consumed flags and the total reset.
func (h *Handler) ReplaceTodayHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req InitTodayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	existing, err := h.queries.GetDailyTracking(ctx, userID, h.todayKey())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No tracking for today"})
		}
		log.Error().Err(err).Msg("tracking lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update tracking"})
	}

	meals := make([]database.TrackedMeal, len(req.Meals))
	for i, m := range req.Meals {
		m.IsConsumed = false
		meals[i] = m
	}

	row, err := h.queries.UpdateDailyTrackingMeals(ctx, existing.TrackingID, meals, 0)
	if err != nil {
		log.Error().Err(err).Msg("tracking update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update tracking"})
	}
	return c.JSON(http.StatusOK, row)
}

// ToggleMealHandler flips one meal's consumed flag and recomputes the
// consumed-calorie total.
func (h *Handler) ToggleMealHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req ToggleMealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	existing, err := h.queries.GetDailyTracking(ctx, userID, h.todayKey())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No tracking for today"})
		}
		log.Error().Err(err).Msg("tracking lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update tracking"})
	}

	if req.MealIndex < 0 || req.MealIndex >= len(existing.Meals) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mealIndex out of range"})
	}

	existing.Meals[req.MealIndex].IsConsumed = !existing.Meals[req.MealIndex].IsConsumed
	total := ConsumedCalories(existing.Meals)

	row, err := h.queries.UpdateDailyTrackingMeals(ctx, existing.TrackingID, existing.Meals, total)
	if err != nil {
		log.Error().Err(err).Msg("tracking update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update tracking"})
	}
	return c.JSON(http.StatusOK, row)
}

// HistoryHandler returns the last N days in chronological order.
func (h *Handler) HistoryHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	limit := parseLimit(c.QueryParam("limit"), defaultHistoryDays)

	history, err := h.queries.ListTrackingHistory(ctx, userID, limit)
	if err != nil {
		log.Error().Err(err).Msg("tracking history failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load history"})
	}

	// Storage returns newest first; clients chart oldest to newest.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	return c.JSON(http.StatusOK, history)
}

// ConsumedCalories sums calories over checked-off meals.
func ConsumedCalories(meals []database.TrackedMeal) float64 {
	var total float64
	for _, m := range meals {
		if m.IsConsumed {
			total += m.Calories
		}
	}
	return total
}
