package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"nutriplan/internal/database"
)

// SignupRequest is the payload for account registration.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest is the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful signup or login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  database.User `json:"user"`
}

// Handler owns the auth endpoints and the route guard.
type Handler struct {
	queries *database.Queries
	issuer  *TokenIssuer
}

// NewHandler wires auth against storage and the token issuer.
func NewHandler(queries *database.Queries, issuer *TokenIssuer) *Handler {
	return &Handler{queries: queries, issuer: issuer}
}

// SignupHandler registers a new account and signs it in.
func (h *Handler) SignupHandler(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email, password and name are required"})
	}

	ctx := c.Request().Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := h.queries.EmailExists(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("email lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}
	if exists {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}

	user, err := h.queries.CreateUser(ctx, email, string(hash), strings.TrimSpace(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("user insert failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}

	token, err := h.issuer.Generate(user.UserID, user.Email, user.Name)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
	}

	return c.JSON(http.StatusCreated, AuthResponse{Token: token, User: user})
}

// LoginHandler verifies credentials and issues a token.
func (h *Handler) LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
	}

	ctx := c.Request().Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		}
		log.Error().Err(err).Msg("user lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := h.issuer.Generate(user.UserID, user.Email, user.Name)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed"})
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token, User: user})
}
