package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"grindsphere/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes profile, favorites and browse-category endpoints.
type UserHandler struct {
	UserSvc user.UserService
}

// GetProfileHandler returns the caller's profile document.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	usr, err := h.UserSvc.GetUserByID(currentUserID(c))
	if err != nil {
		logger.Error("Failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UploadProfilePicHandler accepts a multipart image, uploads it, and stores
// the resulting URL on the profile.
func (h *UserHandler) UploadProfilePicHandler(c *gin.Context) {
	logger := getLogger(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.UserSvc.UpdateProfilePic(c, currentUserID(c), tempFilePath)
	if err != nil {
		logger.Error("Profile picture upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload profile picture", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profilePicUrl": url})
}

// UpdateFCMTokenHandler registers the caller's device token for push delivery.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserSvc.UpdateFCMToken(currentUserID(c), req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update token: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "token updated"})
}

// ToggleFavoriteHandler saves or unsaves a service and returns the resulting
// saved list.
func (h *UserHandler) ToggleFavoriteHandler(c *gin.Context) {
	logger := getLogger(c)
	serviceID := c.Param("id")

	saved, err := h.UserSvc.ToggleFavorite(currentUserID(c), serviceID)
	if err != nil {
		logger.Error("Toggle favorite failed", zap.String("serviceID", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedServices": saved})
}

// SetBrowseCategoryHandler records the category picked on one screen for
// another to consume.
func (h *UserHandler) SetBrowseCategoryHandler(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserSvc.SetBrowseCategory(c, currentUserID(c), req.Category); err != nil {
		var ve user.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set category: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category set"})
}

// GetBrowseCategoryHandler returns the pending category handoff, empty when
// none is set.
func (h *UserHandler) GetBrowseCategoryHandler(c *gin.Context) {
	category, err := h.UserSvc.GetBrowseCategory(c, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read category: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// ClearBrowseCategoryHandler removes the category handoff.
func (h *UserHandler) ClearBrowseCategoryHandler(c *gin.Context) {
	if err := h.UserSvc.ClearBrowseCategory(c, currentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear category: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category cleared"})
}
