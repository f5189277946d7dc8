package server

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/auth"
	"nutriplan/internal/database"
)

// CreateMealPlanRequest saves a generated plan under the user's
// account.
type CreateMealPlanRequest struct {
	Title          string         `json:"title" validate:"required,min=1,max=200"`
	Goal           string         `json:"goal" validate:"required"`
	TargetCalories float64        `json:"targetCalories" validate:"required,gt=0"`
	Plan           map[string]any `json:"plan" validate:"required"`
}

// SetActivePlanRequest picks which saved plan drives daily tracking.
type SetActivePlanRequest struct {
	MealPlanID string `json:"mealPlanId" validate:"required"`
}

func (s *Server) createMealPlanHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	var req CreateMealPlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title, goal, targetCalories and plan are required"})
	}

	plan, err := s.db.Queries().InsertMealPlan(c.Request().Context(), database.InsertMealPlanParams{
		UserID:         userID,
		Title:          req.Title,
		Goal:           req.Goal,
		TargetCalories: req.TargetCalories,
		Plan:           req.Plan,
	})
	if err != nil {
		log.Error().Err(err).Msg("meal plan insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save meal plan"})
	}
	return c.JSON(http.StatusCreated, plan)
}

func (s *Server) listMealPlansHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	plans, err := s.db.Queries().ListMealPlans(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("meal plan list failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plans"})
	}
	return c.JSON(http.StatusOK, plans)
}

// ownedMealPlan loads a plan and enforces that the caller owns it.
func (s *Server) ownedMealPlan(c echo.Context) (database.MealPlan, error) {
	userID, _ := auth.GetUserIDFromContext(c)

	plan, err := s.db.Queries().GetMealPlan(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return database.MealPlan{}, echo.NewHTTPError(http.StatusNotFound, "Meal plan not found")
		}
		log.Error().Err(err).Msg("meal plan lookup failed")
		return database.MealPlan{}, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load meal plan")
	}
	if plan.UserID != userID {
		return database.MealPlan{}, echo.NewHTTPError(http.StatusForbidden, "Not your meal plan")
	}
	return plan, nil
}

func (s *Server) getMealPlanHandler(c echo.Context) error {
	plan, err := s.ownedMealPlan(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plan)
}

func (s *Server) deleteMealPlanHandler(c echo.Context) error {
	plan, err := s.ownedMealPlan(c)
	if err != nil {
		return err
	}

	if err := s.db.Queries().DeleteMealPlan(c.Request().Context(), plan.PlanID); err != nil {
		log.Error().Err(err).Msg("meal plan delete failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete meal plan"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Meal plan deleted"})
}

func (s *Server) toggleFavoriteHandler(c echo.Context) error {
	plan, err := s.ownedMealPlan(c)
	if err != nil {
		return err
	}

	fav, err := s.db.Queries().ToggleMealPlanFavorite(c.Request().Context(), plan.PlanID)
	if err != nil {
		log.Error().Err(err).Msg("favorite toggle failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update meal plan"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"isFavorite": fav})
}

func (s *Server) setActiveMealPlanHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	var req SetActivePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "mealPlanId is required"})
	}

	ctx := c.Request().Context()

	plan, err := s.db.Queries().GetMealPlan(ctx, req.MealPlanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Meal plan not found"})
		}
		log.Error().Err(err).Msg("meal plan lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to set active plan"})
	}
	if plan.UserID != userID {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Not your meal plan"})
	}

	if err := s.db.Queries().UpsertActiveMealPlan(ctx, userID, plan.PlanID); err != nil {
		log.Error().Err(err).Msg("active plan upsert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to set active plan"})
	}
	return c.JSON(http.StatusOK, map[string]string{"activeMealPlanId": plan.PlanID})
}

func (s *Server) getActiveMealPlanHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	planID, err := s.db.Queries().GetActiveMealPlanID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("active plan lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load active plan"})
	}
	if planID == nil {
		return c.JSON(http.StatusOK, nil)
	}

	plan, err := s.db.Queries().GetMealPlan(ctx, *planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Settings can point at a plan deleted since.
			return c.JSON(http.StatusOK, nil)
		}
		log.Error().Err(err).Msg("meal plan lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load active plan"})
	}
	return c.JSON(http.StatusOK, plan)
}
