/*
Package user exposes profile and account-settings endpoints plus the
aggregated "me" overview the app shows on its home screen.
*/
package user

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/auth"
	"nutriplan/internal/database"
)

// Handler owns the profile and account endpoints.
type Handler struct {
	queries *database.Queries
	loc     *time.Location
	now     func() time.Time
}

// NewHandler wires the user endpoints against storage. The location
// drives the today bucket used by the overview aggregate.
func NewHandler(queries *database.Queries, loc *time.Location) *Handler {
	return &Handler{queries: queries, loc: loc, now: time.Now}
}

// UpsertProfileRequest is a full-form profile submit. Omitted optional
// fields clear their stored values.
type UpsertProfileRequest struct {
	Name                string   `json:"name" validate:"required,min=1,max=100"`
	Age                 *int32   `json:"age" validate:"omitempty,gt=0,lt=150"`
	Gender              *string  `json:"gender"`
	Weight              *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height              *float64 `json:"height" validate:"omitempty,gt=0"`
	TargetWeight        *float64 `json:"targetWeight" validate:"omitempty,gt=0"`
	ActivityLevel       *string  `json:"activityLevel"`
	Goal                *string  `json:"goal" validate:"omitempty,oneof=weight_loss muscle_gain maintenance"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// UpsertProfileHandler creates or replaces the caller's profile and
// keeps the account display name in sync.
func (h *Handler) UpsertProfileHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid profile fields"})
	}

	profile, err := h.queries.UpsertProfile(ctx, database.UpsertProfileParams{
		UserID:              userID,
		Name:                strings.TrimSpace(req.Name),
		Age:                 req.Age,
		Gender:              req.Gender,
		WeightKg:            req.Weight,
		HeightCm:            req.Height,
		TargetWeightKg:      req.TargetWeight,
		ActivityLevel:       req.ActivityLevel,
		Goal:                req.Goal,
		DietaryRestrictions: req.DietaryRestrictions,
	})
	if err != nil {
		log.Error().Err(err).Msg("profile upsert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save profile"})
	}

	if err := h.queries.UpdateUserName(ctx, userID, profile.Name); err != nil {
		log.Error().Err(err).Msg("account name sync failed")
	}

	return c.JSON(http.StatusOK, profile)
}

// GetProfileHandler fetches the caller's profile.
func (h *Handler) GetProfileHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	profile, err := h.queries.GetProfileByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found"})
		}
		log.Error().Err(err).Msg("profile lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}
	return c.JSON(http.StatusOK, profile)
}
