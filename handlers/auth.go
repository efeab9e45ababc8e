// File: handlers/auth.go
package handlers

import (
	"net/http"

	"backmoney/models"
	usersvc "backmoney/services/user"
	"backmoney/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes account registration, login and session revocation.
type AuthHandler struct {
	Service usersvc.UserService
}

func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	user, err := h.Service.Register(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "Failed to register user", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) AuthenticateUserHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")

	var req models.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	user, token, err := h.Service.Authenticate(c.Request.Context(), tenantID, req)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) GetCurrentUserHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	userID := c.GetString("userID")

	user, err := h.Service.GetByID(c.Request.Context(), tenantID, userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RevokeTokenHandler clears the stored token hash so the current session
// token stops validating.
func (h *AuthHandler) RevokeTokenHandler(c *gin.Context) {
	tenantID := c.GetString("tenantID")
	userID := c.GetString("userID")

	if err := h.Service.RevokeToken(c.Request.Context(), tenantID, userID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to revoke session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session revoked"})
}
