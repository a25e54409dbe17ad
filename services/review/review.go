package review

import (
	"fmt"
	"time"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidateReviewInput checks the review form before anything is written.
func ValidateReviewInput(input models.ReviewInput) error {
	if input.Rating < 1 || input.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return fmt.Errorf("comment is required")
	}
	return nil
}

// Add stores the review and refreshes the service's denormalized rating from
// the review average. A failed rating refresh does not fail the add; the
// periodic reconciler heals it.
func (s *DefaultReviewService) Add(userID, serviceID string, input models.ReviewInput) (*models.Review, error) {
	if err := ValidateReviewInput(input); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc.OwnerUID == userID {
		return nil, fmt.Errorf("you cannot review your own service")
	}

	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	rev := &models.Review{
		ID:        uuid.New().String(),
		ServiceID: serviceID,
		UserID:    userID,
		UserName:  usr.DisplayName(),
		Rating:    input.Rating,
		Comment:   input.Comment,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}

	if err := s.refreshRating(serviceID); err != nil {
		utils.GetLogger().Warn("Add: failed to refresh service rating",
			zap.String("serviceID", serviceID), zap.Error(err))
	}

	return rev, nil
}

// ListForService returns a service's reviews, newest first.
func (s *DefaultReviewService) ListForService(serviceID string) ([]models.Review, error) {
	return s.Repo.GetByService(serviceID)
}

func (s *DefaultReviewService) refreshRating(serviceID string) error {
	avg, count, err := s.Repo.AverageForService(serviceID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return s.Services.SetRating(serviceID, avg)
}

// ReconcileRatings walks every reviewed service and rewrites its rating from
// the current review average.
func (s *DefaultReviewService) ReconcileRatings() error {
	ids, err := s.Repo.DistinctServiceIDs()
	if err != nil {
		return fmt.Errorf("failed to list reviewed services: %w", err)
	}
	for _, id := range ids {
		if err := s.refreshRating(id); err != nil {
			utils.GetLogger().Warn("ReconcileRatings: failed to refresh rating",
				zap.String("serviceID", id), zap.Error(err))
		}
	}
	return nil
}
