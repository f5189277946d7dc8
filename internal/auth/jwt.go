/*
Package auth handles account signup and login, JWT issuance, and the
request middleware that guards protected routes.
*/
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is how long an access token stays valid.
const TokenDuration = 30 * 24 * time.Hour

// JwtCustomClaims is the claim set carried by access tokens.
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies access tokens with a shared HMAC
// secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer builds an issuer from the configured secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

// Generate signs an access token for the user.
func (ti *TokenIssuer) Generate(userID, email, name string) (string, error) {
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(ti.now().Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(ti.now()),
			Issuer:    "nutriplan",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Verify parses a signed token and returns its claims.
func (ti *TokenIssuer) Verify(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ti.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
