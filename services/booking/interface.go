package booking

import (
	bookingRepo "grindsphere/database/repository/booking"
	catalogRepo "grindsphere/database/repository/catalog"
	userRepo "grindsphere/database/repository/user"
	"grindsphere/models"
	"grindsphere/services/tasks"
)

// BookingService manages the booking-request lifecycle between customers and
// hustlers.
type BookingService interface {
	// Create files a new pending request from the customer against a service.
	Create(customerID string, input models.BookingInput) (*models.BookingRequest, error)
	// ListForCustomer returns the requests the customer has filed, newest first.
	ListForCustomer(customerID string) ([]models.BookingRequest, error)
	// ListForHustler returns the requests addressed to the hustler, newest first.
	ListForHustler(hustlerID string) ([]models.BookingRequest, error)
	// UpdateStatus moves a request through its lifecycle. Only the addressed
	// hustler may act, and only along allowed transitions.
	UpdateStatus(hustlerID, bookingID, status string) (*models.BookingRequest, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services catalogRepo.ServiceRepository
	Users    userRepo.UserRepository
	Pusher   tasks.PushEnqueuer
}
