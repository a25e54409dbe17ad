package handlers

import (
	"errors"
	"net/http"

	"grindsphere/models"
	"grindsphere/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes signup, login and signout endpoints.
type AuthHandler struct {
	UserSvc user.UserService
}

// SignupHandler handles account registration.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserSvc.Register(req)
	if err != nil {
		var ve user.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles credential login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler invalidates the caller's outstanding tokens.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.UserSvc.SignOut(currentUserID(c)); err != nil {
		logger.Error("Sign out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign out failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
