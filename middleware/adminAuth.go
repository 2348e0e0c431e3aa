package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Claims carries the verified identity attached to a request.
type Claims struct {
	UID     string
	IsAdmin bool
}

// AuthVerifier validates a bearer token and returns its claims.
type AuthVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (*Claims, error)
}

// FirebaseVerifier verifies Firebase ID tokens and reads the isAdmin custom
// claim.
type FirebaseVerifier struct {
	Client *auth.Client
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*Claims, error) {
	token, err := v.Client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	isAdmin, _ := token.Claims["isAdmin"].(bool)
	return &Claims{UID: token.UID, IsAdmin: isAdmin}, nil
}

// AdminAuth rejects requests without a valid admin bearer token.
func AdminAuth(verifier AuthVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := verifier.VerifyToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set("uid", claims.UID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
