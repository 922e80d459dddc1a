package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/inventory-api/internal/models"
)

type stubVerifier struct {
	claims *models.IdentityClaims
	err    error
}

func (v *stubVerifier) Verify(tokenString string) (*models.IdentityClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func invokeJWTAuth(t *testing.T, verifier *stubVerifier, decorate func(*http.Request)) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := JWTAuth(verifier, "accessToken")(handler)(c)
	return c, err
}

func TestJWTAuthMissingCredential(t *testing.T) {
	verifier := &stubVerifier{}

	_, err := invokeJWTAuth(t, verifier, nil)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	verifier := &stubVerifier{}

	_, err := invokeJWTAuth(t, verifier, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic abc123")
	})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuthBearerHeader(t *testing.T) {
	claims := &models.IdentityClaims{UserID: "user-1", Email: "alice@example.com"}
	verifier := &stubVerifier{claims: claims}

	c, err := invokeJWTAuth(t, verifier, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer some-token")
	})

	require.NoError(t, err)
	assert.Equal(t, claims, GetClaims(c))
	assert.Equal(t, "user-1", c.Get("user_id"))
}

func TestJWTAuthCookie(t *testing.T) {
	claims := &models.IdentityClaims{UserID: "user-1", Email: "alice@example.com"}
	verifier := &stubVerifier{claims: claims}

	c, err := invokeJWTAuth(t, verifier, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "some-token"})
	})

	require.NoError(t, err)
	assert.Equal(t, claims, GetClaims(c))
}

func TestJWTAuthVerifierRejects(t *testing.T) {
	verifier := &stubVerifier{err: errors.New("bad signature")}

	c, err := invokeJWTAuth(t, verifier, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer some-token")
	})

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Nil(t, GetClaims(c))
}
