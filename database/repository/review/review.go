package reviewRepo

import "grindsphere/models"

// ReviewRepository defines methods for review document access.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(rev *models.Review) error
	// GetByService retrieves a service's reviews, newest first.
	GetByService(serviceID string) ([]models.Review, error)
	// AverageForService computes the mean rating over a service's reviews.
	// Returns (0, 0, nil) when the service has none.
	AverageForService(serviceID string) (avg float64, count int64, err error)
	// CountByServices counts reviews across the given services.
	CountByServices(serviceIDs []string) (int64, error)
	// DistinctServiceIDs lists every service ID that has at least one review.
	DistinctServiceIDs() ([]string, error)
}
