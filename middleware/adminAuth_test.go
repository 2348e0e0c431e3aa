package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	claims *Claims
	err    error
}

func (f *fakeVerifier) VerifyToken(ctx context.Context, idToken string) (*Claims, error) {
	return f.claims, f.err
}

func runAdminAuth(t *testing.T, verifier AuthVerifier, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AdminAuth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuthMissingToken(t *testing.T) {
	w := runAdminAuth(t, &fakeVerifier{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAdminAuthMalformedHeader(t *testing.T) {
	w := runAdminAuth(t, &fakeVerifier{}, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthInvalidToken(t *testing.T) {
	w := runAdminAuth(t, &fakeVerifier{err: errors.New("expired")}, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAdminAuthNonAdmin(t *testing.T) {
	w := runAdminAuth(t, &fakeVerifier{claims: &Claims{UID: "u1"}}, "Bearer good")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestAdminAuthAdminPasses(t *testing.T) {
	w := runAdminAuth(t, &fakeVerifier{claims: &Claims{UID: "u1", IsAdmin: true}}, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
}
