package user

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"nutriplan/internal/auth"
	"nutriplan/internal/database"
	"nutriplan/internal/tracking"
)

// Overview bundles everything the app's home screen needs in one
// round trip.
type Overview struct {
	Account          database.User           `json:"account"`
	Profile          *database.UserProfile   `json:"profile"`
	LatestWeight     *database.WeightEntry   `json:"latestWeight"`
	TodayTracking    *database.DailyTracking `json:"todayTracking"`
	ActiveMealPlanID *string                 `json:"activeMealPlanId"`
}

// OverviewHandler fans out the five lookups concurrently and fails the
// request if any of them errors. Missing optional rows come back null.
func (h *Handler) OverviewHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	today := tracking.DayKey(h.now(), h.loc)

	var overview Overview
	g, ctx := errgroup.WithContext(c.Request().Context())

	g.Go(func() error {
		account, err := h.queries.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		overview.Account = account
		return nil
	})
	g.Go(func() error {
		profile, err := notFoundIsNil(h.queries.GetProfileByUserID(ctx, userID))
		if err != nil {
			return err
		}
		overview.Profile = profile
		return nil
	})
	g.Go(func() error {
		weight, err := notFoundIsNil(h.queries.GetLatestWeight(ctx, userID))
		if err != nil {
			return err
		}
		overview.LatestWeight = weight
		return nil
	})
	g.Go(func() error {
		day, err := notFoundIsNil(h.queries.GetDailyTracking(ctx, userID, today))
		if err != nil {
			return err
		}
		overview.TodayTracking = day
		return nil
	})
	g.Go(func() error {
		planID, err := h.queries.GetActiveMealPlanID(ctx, userID)
		if err != nil {
			return err
		}
		overview.ActiveMealPlanID = planID
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("overview aggregate failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load overview"})
	}
	return c.JSON(http.StatusOK, overview)
}
