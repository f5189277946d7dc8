package chat

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/auth"
	"nutriplan/internal/database"
	"nutriplan/internal/tracking"
)

const historyLimit = 50

// HistoryHandler owns the stored-conversation endpoints.
type HistoryHandler struct {
	queries *database.Queries
	loc     *time.Location
	now     func() time.Time
}

// NewHistoryHandler wires history against storage and the configured
// timezone used for the daily message count.
func NewHistoryHandler(queries *database.Queries, loc *time.Location) *HistoryHandler {
	return &HistoryHandler{queries: queries, loc: loc, now: time.Now}
}

// SaveRequest appends one exchange to the history.
type SaveRequest struct {
	Message  string `json:"message" validate:"required"`
	Response string `json:"response" validate:"required"`
}

// SaveHandler appends an exchange.
func (h *HistoryHandler) SaveHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message and response are required"})
	}

	msg, err := h.queries.InsertChatMessage(c.Request().Context(), userID, req.Message, req.Response)
	if err != nil {
		log.Error().Err(err).Msg("chat history insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save message"})
	}
	return c.JSON(http.StatusCreated, msg)
}

// ListHandler returns the latest exchanges in chronological order.
func (h *HistoryHandler) ListHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	messages, err := h.queries.ListRecentChatMessages(c.Request().Context(), userID, historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("chat history list failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load history"})
	}

	// Storage returns newest first; the chat screen renders oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return c.JSON(http.StatusOK, messages)
}

// ClearHandler deletes the whole conversation and reports how many
// exchanges went away.
func (h *HistoryHandler) ClearHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)

	deleted, err := h.queries.DeleteChatMessages(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("chat history delete failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear history"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"deleted": deleted})
}

// TodayCountHandler counts messages sent since local midnight, the
// input to the app's daily quota display.
func (h *HistoryHandler) TodayCountHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	since := tracking.StartOfDay(h.now(), h.loc)

	count, err := h.queries.CountChatMessagesSince(c.Request().Context(), userID, since)
	if err != nil {
		log.Error().Err(err).Msg("chat history count failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count messages"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
