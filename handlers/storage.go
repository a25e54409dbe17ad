package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"grindsphere/services/storage"
	"grindsphere/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles generic file uploads.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// allowedBuckets defines permitted destination folders for generic uploads.
var allowedBuckets = map[string]bool{
	"images":         true,
	"banners":        true,
	"service_images": true,
	"profile_pics":   true,
}

// UploadFileHandler saves the multipart file locally, pushes it to object
// storage, and returns the hosted URL.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		utils.JSONError(c, http.StatusBadRequest, "invalid bucket", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c, tempFilePath, bucket)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"downloadURL": url,
	})
}
