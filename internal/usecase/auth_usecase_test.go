package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/inventory-api/internal/config"
)

const testSecret = "test-secret"

func newTestVerifier(secret string) TokenVerifier {
	conf := &config.Config{}
	conf.Auth.JWTSecret = secret
	return NewTokenVerifier(conf)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifyValidToken(t *testing.T) {
	verifier := newTestVerifier(testSecret)

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "alice@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})

	claims, err := verifier.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyInvalidTokens(t *testing.T) {
	verifier := newTestVerifier(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "garbage string",
			token: "not-a-jwt",
		},
		{
			name: "wrong secret",
			token: signToken(t, "other-secret", jwt.MapClaims{
				"user_id": "user-123",
				"email":   "alice@example.com",
			}),
		},
		{
			name: "expired",
			token: signToken(t, testSecret, jwt.MapClaims{
				"user_id": "user-123",
				"email":   "alice@example.com",
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}),
		},
		{
			name: "missing email claim",
			token: signToken(t, testSecret, jwt.MapClaims{
				"user_id": "user-123",
			}),
		},
		{
			name: "missing user_id claim",
			token: signToken(t, testSecret, jwt.MapClaims{
				"email": "alice@example.com",
			}),
		},
		{
			name: "non-string claims",
			token: signToken(t, testSecret, jwt.MapClaims{
				"user_id": 42,
				"email":   true,
			}),
		},
		{
			name:  "empty",
			token: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
