package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/chat"
	"nutriplan/internal/mealplan"
)

// ChatRequest is the body of the public chat endpoint.
type ChatRequest struct {
	Message     string            `json:"message"`
	UserContext *chat.UserContext `json:"userContext"`
}

// generatePlanHandler runs the AI generation pipeline and maps its
// failure kinds onto HTTP statuses.
func (s *Server) generatePlanHandler(c echo.Context) error {
	var req mealplan.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := s.generator.Generate(c.Request().Context(), req)
	if err != nil {
		perr, ok := mealplan.AsError(err)
		if !ok {
			log.Error().Err(err).Msg("plan generation failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate meal plan"})
		}

		body := map[string]any{"error": perr.Message}
		if perr.Details != "" {
			body["details"] = perr.Details
		}
		if perr.RawText != "" {
			body["rawText"] = perr.RawText
		}

		status := http.StatusInternalServerError
		switch perr.Kind {
		case mealplan.KindInvalidRequest:
			status = http.StatusBadRequest
		case mealplan.KindUpstreamTimeout:
			status = http.StatusGatewayTimeout
		}

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("goal", req.Goal).Str("budget", req.Budget).Msg("plan generation failed")
		}
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"mealPlan": result.MealPlan,
		"metadata": result.Metadata,
	})
}

// chatHandler answers one assistant message.
func (s *Server) chatHandler(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	reply, err := s.assistant.Reply(c.Request().Context(), req.Message, req.UserContext)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
		}
		log.Error().Err(err).Msg("chat request failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process message"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"response": reply,
	})
}
