package catalog

import (
	"context"
	"fmt"

	"grindsphere/models"
	"grindsphere/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidateServiceInput checks the edit form locally before any upload or
// document write happens.
func ValidateServiceInput(input models.ServiceInput) error {
	if input.Name == "" || input.Description == "" || input.Location == "" {
		return fmt.Errorf("name, description and location are required")
	}
	if input.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	return nil
}

// Save uploads any new images sequentially, then writes the service document
// referencing the resulting URLs. An upload failure aborts before the
// document write; objects uploaded earlier in the sequence are not rolled
// back, matching the edit screen's behavior, but the caller is told.
func (s *DefaultCatalogService) Save(ctx context.Context, ownerID, serviceID string, input models.ServiceInput, bannerPath string, imagePaths []string) (*models.Service, error) {
	if err := ValidateServiceInput(input); err != nil {
		return nil, err
	}

	owner, err := s.Users.GetByID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	var existing *models.Service
	if serviceID != "" {
		existing, err = s.Repo.GetByID(serviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch service: %w", err)
		}
		if existing.OwnerUID != ownerID {
			return nil, ErrNotOwner{}
		}
	}

	banner := input.Banner
	if bannerPath != "" {
		banner, err = s.Storage.UploadFile(ctx, bannerPath, "banners")
		if err != nil {
			return nil, fmt.Errorf("failed to upload banner: %w", err)
		}
	}

	images := append([]string{}, input.Images...)
	for _, path := range imagePaths {
		url, err := s.Storage.UploadFile(ctx, path, "service_images")
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		images = append(images, url)
	}

	svc := models.Service{
		OwnerUID:    ownerID,
		OwnerName:   owner.DisplayName(),
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		Categories:  input.Categories,
		Images:      images,
		Banner:      banner,
		Price:       input.Price,
	}

	if existing == nil {
		svc.ID = uuid.New().String()
		if err := s.Repo.Create(&svc); err != nil {
			return nil, err
		}
		return &svc, nil
	}

	// Counters and rating survive edits; everything else is replaced.
	svc.ID = existing.ID
	svc.Rating = existing.Rating
	svc.Views = existing.Views
	svc.Bookings = existing.Bookings
	svc.CreatedAt = existing.CreatedAt
	if err := s.Repo.Replace(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Get returns the detail view: the document, the owner's display details, and
// whether the viewer has saved it. Views are bumped atomically, except for
// the owner looking at their own listing.
func (s *DefaultCatalogService) Get(serviceID, viewerID string) (*models.ServiceDetail, error) {
	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	detail := &models.ServiceDetail{Service: *svc}

	owner, err := s.Users.GetByID(svc.OwnerUID)
	if err != nil {
		utils.GetLogger().Warn("Get: failed to resolve service owner",
			zap.String("serviceID", serviceID), zap.Error(err))
	} else {
		detail.OwnerProfilePic = owner.ProfilePicURL
		detail.Service.OwnerName = owner.DisplayName()
	}

	if viewerID != "" && viewerID != svc.OwnerUID {
		viewer, err := s.Users.GetByID(viewerID)
		if err == nil {
			for _, id := range viewer.SavedServices {
				if id == serviceID {
					detail.Saved = true
					break
				}
			}
		}
		if err := s.Repo.IncrementViews(serviceID); err != nil {
			utils.GetLogger().Warn("Get: failed to increment views",
				zap.String("serviceID", serviceID), zap.Error(err))
		} else {
			detail.Service.Views++
		}
	}

	return detail, nil
}

// List fetches the full collection and narrows it in memory; the catalog is
// small enough that no server-side query pushdown is needed.
func (s *DefaultCatalogService) List(query, category string, limit int) ([]models.Service, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := FilterServices(all, query, category)
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// Mine returns the owner's own services.
func (s *DefaultCatalogService) Mine(ownerID string) ([]models.Service, error) {
	return s.Repo.GetByOwner(ownerID)
}

// Favorites resolves the user's saved service IDs to full documents. IDs that
// no longer resolve (deleted services) are silently dropped.
func (s *DefaultCatalogService) Favorites(userID string) ([]models.Service, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if len(usr.SavedServices) == 0 {
		return []models.Service{}, nil
	}

	saved := make(map[string]bool, len(usr.SavedServices))
	for _, id := range usr.SavedServices {
		saved[id] = true
	}

	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.Service, 0, len(usr.SavedServices))
	for _, svc := range all {
		if saved[svc.ID] {
			out = append(out, svc)
		}
	}
	return out, nil
}

// Delete removes one of the owner's services.
func (s *DefaultCatalogService) Delete(ownerID, serviceID string) error {
	svc, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc.OwnerUID != ownerID {
		return ErrNotOwner{}
	}
	return s.Repo.Delete(serviceID)
}
