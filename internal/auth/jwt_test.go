package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Generate("user-1", "an@example.com", "An")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "an@example.com", claims.Email)
	assert.Equal(t, "An", claims.Name)
	assert.Equal(t, "nutriplan", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Generate("user-1", "an@example.com", "An")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	issuer.now = func() time.Time { return time.Now().Add(-2 * TokenDuration) }

	token, err := issuer.Generate("user-1", "an@example.com", "An")
	require.NoError(t, err)

	_, err = NewTokenIssuer("test-secret").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
