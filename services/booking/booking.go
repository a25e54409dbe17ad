package booking

import (
	"fmt"
	"time"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedTransitions maps a current status to the statuses a hustler may move
// it to. Rejected and completed are terminal.
var allowedTransitions = map[string][]string{
	models.BookingPending:  {models.BookingAccepted, models.BookingRejected},
	models.BookingAccepted: {models.BookingCompleted},
}

// ValidateTransition reports whether a booking may move from one status to
// another.
func ValidateTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Create snapshots the service and both parties into a new pending request,
// bumps the service's booking counter, and notifies the hustler.
func (s *DefaultBookingService) Create(customerID string, input models.BookingInput) (*models.BookingRequest, error) {
	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc.OwnerUID == customerID {
		return nil, fmt.Errorf("you cannot book your own service")
	}

	customer, err := s.Users.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}

	req := &models.BookingRequest{
		ID:           uuid.New().String(),
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		CustomerID:   customerID,
		CustomerName: customer.DisplayName(),
		HustlerID:    svc.OwnerUID,
		HustlerName:  svc.OwnerName,
		Status:       models.BookingPending,
		Date:         input.Date,
		Message:      input.Message,
		Price:        svc.Price,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}

	if err := s.Services.IncrementBookings(svc.ID); err != nil {
		utils.GetLogger().Warn("Create: failed to increment booking counter",
			zap.String("serviceID", svc.ID), zap.Error(err))
	}

	s.notify(svc.OwnerUID, "New booking request",
		fmt.Sprintf("%s requested %s", req.CustomerName, req.ServiceName),
		map[string]string{"bookingId": req.ID, "type": "booking_created"})

	return req, nil
}

// ListForCustomer returns the requests the customer has filed, newest first.
func (s *DefaultBookingService) ListForCustomer(customerID string) ([]models.BookingRequest, error) {
	return s.Repo.GetByCustomer(customerID)
}

// ListForHustler returns the requests addressed to the hustler, newest first.
func (s *DefaultBookingService) ListForHustler(hustlerID string) ([]models.BookingRequest, error) {
	return s.Repo.GetByHustler(hustlerID)
}

// UpdateStatus moves the request along its lifecycle and notifies the
// customer of the decision.
func (s *DefaultBookingService) UpdateStatus(hustlerID, bookingID, status string) (*models.BookingRequest, error) {
	req, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if req.HustlerID != hustlerID {
		return nil, fmt.Errorf("this booking is not addressed to you")
	}
	if !ValidateTransition(req.Status, status) {
		return nil, fmt.Errorf("cannot move booking from %s to %s", req.Status, status)
	}

	if err := s.Repo.UpdateStatus(bookingID, status); err != nil {
		return nil, err
	}
	req.Status = status

	s.notify(req.CustomerID, "Booking "+status,
		fmt.Sprintf("Your request for %s was %s", req.ServiceName, status),
		map[string]string{"bookingId": req.ID, "type": "booking_" + status})

	return req, nil
}

func (s *DefaultBookingService) notify(userID, title, body string, data map[string]string) {
	if s.Pusher == nil {
		return
	}
	err := s.Pusher.EnqueuePush(models.PushPayload{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	if err != nil {
		utils.GetLogger().Warn("notify: failed to enqueue push",
			zap.String("userID", userID), zap.Error(err))
	}
}
