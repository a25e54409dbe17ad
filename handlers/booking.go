package handlers

import (
	"net/http"

	"grindsphere/models"
	"grindsphere/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking-request lifecycle endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
}

// CreateBookingHandler files a new pending request from the customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req, err := h.BookingSvc.Create(currentUserID(c), input)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListBookingsHandler returns the caller's bookings; the side of the exchange
// is inferred from their account role.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	uid := currentUserID(c)

	var (
		bookings []models.BookingRequest
		err      error
	)
	if role, _ := c.Get("role"); role == models.RoleHustler {
		bookings, err = h.BookingSvc.ListForHustler(uid)
	} else {
		bookings, err = h.BookingSvc.ListForCustomer(uid)
	}
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler moves a request along its lifecycle.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.BookingSvc.UpdateStatus(currentUserID(c), c.Param("id"), req.Status)
	if err != nil {
		logger.Error("Failed to update booking status",
			zap.String("bookingID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
