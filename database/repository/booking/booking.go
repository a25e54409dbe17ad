package bookingRepo

import "grindsphere/models"

// BookingRepository defines methods for booking-request document access.
type BookingRepository interface {
	// GetByID retrieves a booking request by its unique ID.
	GetByID(id string) (*models.BookingRequest, error)
	// GetByCustomer retrieves bookings created by the given customer,
	// newest first.
	GetByCustomer(customerID string) ([]models.BookingRequest, error)
	// GetByHustler retrieves bookings addressed to the given hustler,
	// newest first.
	GetByHustler(hustlerID string) ([]models.BookingRequest, error)
	// Create inserts a new booking request.
	Create(b *models.BookingRequest) error
	// UpdateStatus writes the booking's status field.
	UpdateStatus(id, status string) error
}
