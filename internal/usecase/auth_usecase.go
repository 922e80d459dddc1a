package usecase

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopstack/inventory-api/internal/config"
	"github.com/shopstack/inventory-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier decodes a bearer credential into an identity claim.
type TokenVerifier interface {
	Verify(tokenString string) (*models.IdentityClaims, error)
}

type tokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(conf *config.Config) TokenVerifier {
	return &tokenVerifier{secret: []byte(conf.Auth.JWTSecret)}
}

// Verify parses and validates an HS256 token. Malformed, expired or
// signature-invalid tokens and tokens missing the user_id or email claim
// all resolve to ErrInvalidToken.
func (v *tokenVerifier) Verify(tokenString string) (*models.IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" || email == "" {
		return nil, fmt.Errorf("%w: missing user_id or email claim", ErrInvalidToken)
	}

	return &models.IdentityClaims{
		UserID: userID,
		Email:  email,
	}, nil
}
