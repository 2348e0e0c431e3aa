// File: handlers/admin.go
package handlers

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medinatours/utils"
)

// UserDirectory is the slice of the identity provider the admin login needs.
// *auth.Client satisfies it.
type UserDirectory interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

// AdminHandler mints custom tokens for users carrying the isAdmin claim.
type AdminHandler struct {
	dir UserDirectory
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(dir UserDirectory) *AdminHandler {
	return &AdminHandler{dir: dir}
}

type adminLoginRequest struct {
	Email string `json:"email"`
}

// Login looks the user up by email and, when the account carries the isAdmin
// custom claim, returns a custom token the client exchanges for an ID token.
// Password verification happens on the client against the identity provider;
// this endpoint only gates the admin claim.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	user, err := h.dir.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	isAdmin, _ := user.CustomClaims["isAdmin"].(bool)
	if !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	token, err := h.dir.CustomToken(c.Request.Context(), user.UID)
	if err != nil {
		utils.GetLogger().Error("failed to mint custom token",
			zap.String("uid", user.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customToken": token})
}
