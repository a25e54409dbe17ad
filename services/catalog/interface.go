package catalog

import (
	"context"

	catalogRepo "grindsphere/database/repository/catalog"
	reviewRepo "grindsphere/database/repository/review"
	userRepo "grindsphere/database/repository/user"
	"grindsphere/models"
	"grindsphere/services/storage"
)

// CatalogService manages service documents: publishing, detail views,
// listing/search, and the owner dashboard aggregation.
type CatalogService interface {
	// Save creates (empty serviceID) or replaces (set serviceID) a service.
	// bannerPath and imagePaths are local files to upload before the
	// document write.
	Save(ctx context.Context, ownerID, serviceID string, input models.ServiceInput, bannerPath string, imagePaths []string) (*models.Service, error)
	// Get returns the detail view and counts the viewer's visit.
	Get(serviceID, viewerID string) (*models.ServiceDetail, error)
	// List returns services narrowed by free-text query and category.
	List(query, category string, limit int) ([]models.Service, error)
	// Delete removes one of the owner's services.
	Delete(ownerID, serviceID string) error
	// Mine returns the owner's own services.
	Mine(ownerID string) ([]models.Service, error)
	// Favorites returns the full documents of the user's saved services.
	Favorites(userID string) ([]models.Service, error)
	// OwnerDashboard aggregates the hustler's own documents.
	OwnerDashboard(ownerID string) (*models.OwnerDashboard, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo    catalogRepo.ServiceRepository
	Users   userRepo.UserRepository
	Reviews reviewRepo.ReviewRepository
	Storage storage.StorageService
}

// ErrNotOwner is returned when a hustler edits a service they do not own.
type ErrNotOwner struct{}

func (ErrNotOwner) Error() string {
	return "you do not own this service"
}
