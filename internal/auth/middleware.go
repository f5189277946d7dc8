package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const userIDContextKey = "user_id"

// JwtAuthMiddleware rejects requests that do not carry a valid Bearer
// token and stores the authenticated user ID on the echo context.
func (h *Handler) JwtAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing authorization token"})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := h.issuer.Verify(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token validation failed")
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(userIDContextKey, claims.UserID)
		return next(c)
	}
}

// GetUserIDFromContext returns the authenticated user ID placed on the
// context by JwtAuthMiddleware. The boolean is false on unguarded
// routes.
func GetUserIDFromContext(c echo.Context) (string, bool) {
	userID, ok := c.Get(userIDContextKey).(string)
	return userID, ok && userID != ""
}
