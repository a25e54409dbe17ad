package handlers

import (
	"net/http"

	"grindsphere/models"
	"grindsphere/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	ReviewSvc review.ReviewService
}

// AddReviewHandler stores a review against a service.
func (h *ReviewHandler) AddReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rev, err := h.ReviewSvc.Add(currentUserID(c), c.Param("id"), input)
	if err != nil {
		logger.Error("Failed to add review", zap.String("serviceID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListReviewsHandler returns a service's reviews, newest first.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	reviews, err := h.ReviewSvc.ListForService(c.Param("id"))
	if err != nil {
		logger.Error("Failed to list reviews", zap.String("serviceID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
