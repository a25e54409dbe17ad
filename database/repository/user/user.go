package userRepo

import (
	"grindsphere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user profile data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetByIDs retrieves the users matching the given IDs.
	GetByIDs(ids []string) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSet applies a $set update to the user document.
	UpdateSet(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error

	// AddSavedService atomically adds a service ID to savedServices.
	AddSavedService(id, serviceID string) error
	// RemoveSavedService atomically removes a service ID from savedServices.
	RemoveSavedService(id, serviceID string) error
	// CountBySavedServices counts users that saved any of the given services.
	CountBySavedServices(serviceIDs []string) (int64, error)
}
