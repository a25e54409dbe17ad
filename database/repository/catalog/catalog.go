package catalogRepo

import "grindsphere/models"

// ServiceRepository defines methods for service document access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all published services.
	GetAll() ([]models.Service, error)
	// GetByOwner retrieves every service owned by the given hustler.
	GetByOwner(ownerUID string) ([]models.Service, error)
	// Create inserts a new service document.
	Create(svc *models.Service) error
	// Replace overwrites an existing service document wholesale.
	// Last writer wins; edits carry no optimistic concurrency.
	Replace(svc *models.Service) error
	// Delete removes a service document by its ID.
	Delete(id string) error

	// IncrementViews atomically bumps the view counter.
	IncrementViews(id string) error
	// IncrementBookings atomically bumps the booking counter.
	IncrementBookings(id string) error
	// SetRating writes the recomputed average rating.
	SetRating(id string, rating float64) error
}
