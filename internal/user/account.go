package user

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"nutriplan/internal/auth"
)

// UpdateNameRequest changes the account display name.
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdatePasswordRequest rotates the credential after verifying the
// current one.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UpdateEmailRequest changes the login email after verifying the
// password.
type UpdateEmailRequest struct {
	Password string `json:"password" validate:"required"`
	NewEmail string `json:"newEmail" validate:"required,email"`
}

// UpdateNameHandler renames the account and syncs the profile row.
func (h *Handler) UpdateNameHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	name := strings.TrimSpace(req.Name)
	if err := h.queries.UpdateUserName(ctx, userID, name); err != nil {
		log.Error().Err(err).Msg("account name update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update name"})
	}
	if err := h.queries.UpdateProfileName(ctx, userID, name); err != nil {
		log.Error().Err(err).Msg("profile name sync failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Name updated"})
}

// UpdatePasswordHandler verifies the current password and stores a new
// hash.
func (h *Handler) UpdatePasswordHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Current and new password are required"})
	}

	account, err := h.queries.GetUserByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("account lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Current password is incorrect"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}

	if err := h.queries.UpdateUserPassword(ctx, userID, string(hash)); err != nil {
		log.Error().Err(err).Msg("password update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update password"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated"})
}

// UpdateEmailHandler changes the login email after password
// verification. The new address must not be in use.
func (h *Handler) UpdateEmailHandler(c echo.Context) error {
	userID, _ := auth.GetUserIDFromContext(c)
	ctx := c.Request().Context()

	var req UpdateEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password and a valid new email are required"})
	}

	account, err := h.queries.GetUserByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("account lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update email"})
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Password is incorrect"})
	}

	email := strings.ToLower(strings.TrimSpace(req.NewEmail))
	if email != account.Email {
		exists, err := h.queries.EmailExists(ctx, email)
		if err != nil {
			log.Error().Err(err).Msg("email lookup failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update email"})
		}
		if exists {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Email already in use"})
		}
	}

	if err := h.queries.UpdateUserEmail(ctx, userID, email); err != nil {
		log.Error().Err(err).Msg("email update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update email"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Email updated"})
}

// notFoundIsNil maps a missing row to a nil result so optional lookups
// read cleanly in aggregates.
func notFoundIsNil[T any](v T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
