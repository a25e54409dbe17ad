package catalog

import (
	"fmt"

	"grindsphere/models"
)

// OwnerDashboard aggregates everything a hustler sees on their dashboard:
// their listings, the summed counters, how many reviews their services have
// collected, and how many customers saved at least one of their listings.
func (s *DefaultCatalogService) OwnerDashboard(ownerID string) (*models.OwnerDashboard, error) {
	services, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	dash := &models.OwnerDashboard{
		Services:     services,
		ServiceCount: len(services),
	}

	ids := make([]string, 0, len(services))
	for _, svc := range services {
		dash.TotalViews += svc.Views
		dash.TotalBookings += svc.Bookings
		ids = append(ids, svc.ID)
	}

	if len(ids) == 0 {
		return dash, nil
	}

	reviewCount, err := s.Reviews.CountByServices(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}
	dash.ReviewCount = reviewCount

	savedBy, err := s.Users.CountBySavedServices(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count saves: %w", err)
	}
	dash.SavedByCount = savedBy

	return dash, nil
}
