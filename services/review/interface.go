package review

import (
	catalogRepo "grindsphere/database/repository/catalog"
	reviewRepo "grindsphere/database/repository/review"
	userRepo "grindsphere/database/repository/user"
	"grindsphere/models"
)

// ReviewService manages customer reviews and keeps the denormalized service
// rating in step with them.
type ReviewService interface {
	// Add validates and stores a review, then refreshes the service's rating.
	Add(userID, serviceID string, input models.ReviewInput) (*models.Review, error)
	// ListForService returns a service's reviews, newest first.
	ListForService(serviceID string) ([]models.Review, error)
	// ReconcileRatings recomputes every reviewed service's rating from its
	// reviews. Run periodically to heal ratings that drifted after a
	// post-review update failed.
	ReconcileRatings() error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Services catalogRepo.ServiceRepository
	Users    userRepo.UserRepository
}
