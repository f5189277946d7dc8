package tracking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/auth"
)

const defaultWeightLimit = 100

// UpsertWeightRequest logs a measurement. Date defaults to today's
// bucket when omitted.
type UpsertWeightRequest struct {
	Weight float64 `json:"weight" validate:"required,gt=0"`
	Date   string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Note   *string `json:"note"`
}

// UpsertWeightHandler records a weight for a day, replacing any value
// already logged on that date.
func (h *Handler) UpsertWeightHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req UpsertWeightRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Weight must be a positive number"})
	}

	date := req.Date
	if date == "" {
		date = h.todayKey()
	}

	entry, err := h.queries.UpsertWeight(ctx, userID, req.Weight, date, req.Note)
	if err != nil {
		log.Error().Err(err).Msg("weight upsert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save weight"})
	}
	return c.JSON(http.StatusOK, entry)
}

// ListWeightsHandler returns measurements newest first.
func (h *Handler) ListWeightsHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	limit := parseLimit(c.QueryParam("limit"), defaultWeightLimit)

	entries, err := h.queries.ListWeights(ctx, userID, limit)
	if err != nil {
		log.Error().Err(err).Msg("weight list failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load weights"})
	}
	return c.JSON(http.StatusOK, entries)
}

// LatestWeightHandler returns the most recent measurement or null.
func (h *Handler) LatestWeightHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	entry, err := h.queries.GetLatestWeight(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusOK, nil)
		}
		log.Error().Err(err).Msg("weight lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load weight"})
	}
	return c.JSON(http.StatusOK, entry)
}

// WeightByDateHandler returns the measurement for one calendar day or
// null.
func (h *Handler) WeightByDateHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Date must be YYYY-MM-DD"})
	}

	entry, err := h.queries.GetWeightByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusOK, nil)
		}
		log.Error().Err(err).Msg("weight lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load weight"})
	}
	return c.JSON(http.StatusOK, entry)
}

func parseLimit(raw string, fallback int) int32 {
	if raw == "" {
		return int32(fallback)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return int32(fallback)
	}
	return int32(n)
}
