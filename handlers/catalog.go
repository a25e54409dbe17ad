package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"grindsphere/models"
	"grindsphere/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes service listing, detail, publish and dashboard
// endpoints.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
}

// ListServicesHandler returns services narrowed by q / category / limit.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	limit := 0
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	services, err := h.CatalogSvc.List(c.Query("q"), c.Query("category"), limit)
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// TopServicesHandler returns the services ranked by bookings or views.
func (h *CatalogHandler) TopServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	by := c.DefaultQuery("by", "bookings")
	if by != "bookings" && by != "views" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'by' parameter; expected 'bookings' or 'views'"})
		return
	}

	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	services, err := h.CatalogSvc.List("", "", 0)
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}

	if by == "views" {
		services = catalog.TopByViews(services, limit)
	} else {
		services = catalog.TopByBookings(services, limit)
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler returns the detail view and counts the visit.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	serviceID := c.Param("id")

	detail, err := h.CatalogSvc.Get(serviceID, currentUserID(c))
	if err != nil {
		logger.Error("Failed to fetch service", zap.String("serviceID", serviceID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MyServicesHandler lists the authenticated hustler's own services.
func (h *CatalogHandler) MyServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.CatalogSvc.Mine(currentUserID(c))
	if err != nil {
		logger.Error("Failed to list own services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListFavoritesHandler returns the full documents of the caller's saved
// services.
func (h *CatalogHandler) ListFavoritesHandler(c *gin.Context) {
	logger := getLogger(c)

	services, err := h.CatalogSvc.Favorites(currentUserID(c))
	if err != nil {
		logger.Error("Failed to list favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// SaveServiceHandler handles create (POST, no :id) and replace (PUT, :id)
// with a multipart form: a "service" JSON part plus optional "banner" and
// repeated "images" file parts.
func (h *CatalogHandler) SaveServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ServiceInput
	if raw := c.PostForm("service"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service payload", "detail": err.Error()})
			return
		}
	} else if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service payload", "detail": err.Error()})
		return
	}

	var tempFiles []string
	defer func() {
		for _, f := range tempFiles {
			os.Remove(f)
		}
	}()

	saveUpload := func(field string) (string, error) {
		fileHeader, err := c.FormFile(field)
		if err != nil {
			return "", err
		}
		path := filepath.Join(os.TempDir(), fileHeader.Filename)
		if err := c.SaveUploadedFile(fileHeader, path); err != nil {
			return "", err
		}
		tempFiles = append(tempFiles, path)
		return path, nil
	}

	bannerPath := ""
	if p, err := saveUpload("banner"); err == nil {
		bannerPath = p
	}

	var imagePaths []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			path := filepath.Join(os.TempDir(), fh.Filename)
			if err := c.SaveUploadedFile(fh, path); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image", "detail": err.Error()})
				return
			}
			tempFiles = append(tempFiles, path)
			imagePaths = append(imagePaths, path)
		}
	}

	svc, err := h.CatalogSvc.Save(c, currentUserID(c), c.Param("id"), input, bannerPath, imagePaths)
	if err != nil {
		var notOwner catalog.ErrNotOwner
		if errors.As(err, &notOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save service: " + err.Error()})
		return
	}

	status := http.StatusOK
	if c.Param("id") == "" {
		status = http.StatusCreated
	}
	c.JSON(status, svc)
}

// DeleteServiceHandler removes one of the owner's services.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	serviceID := c.Param("id")

	if err := h.CatalogSvc.Delete(currentUserID(c), serviceID); err != nil {
		var notOwner catalog.ErrNotOwner
		if errors.As(err, &notOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete service", zap.String("serviceID", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// DashboardHandler returns the hustler's aggregate dashboard.
func (h *CatalogHandler) DashboardHandler(c *gin.Context) {
	logger := getLogger(c)

	dash, err := h.CatalogSvc.OwnerDashboard(currentUserID(c))
	if err != nil {
		logger.Error("Failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dash)
}
