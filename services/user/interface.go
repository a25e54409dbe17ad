package user

import (
	"context"

	userRepo "grindsphere/database/repository/user"
	"grindsphere/models"
	"grindsphere/services/storage"

	"github.com/go-redis/redis/v8"
)

// UserService covers authentication, profile management, favorites, and the
// cross-screen browse-category handoff.
type UserService interface {
	// Registration / authentication
	Register(req models.SignupRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	SignOut(userID string) error

	// Profile
	GetUserByID(userID string) (*models.User, error)
	UpdateProfilePic(ctx context.Context, userID, localFilePath string) (string, error)
	UpdateFCMToken(userID, token string) error

	// Favorites
	ToggleFavorite(userID, serviceID string) ([]string, error)

	// Browse-category handoff between screens
	SetBrowseCategory(ctx context.Context, userID, category string) error
	GetBrowseCategory(ctx context.Context, userID string) (string, error)
	ClearBrowseCategory(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Storage storage.StorageService
	Cache   *redis.Client
}

// AuthResponse is returned on successful signup or login. Clients route to
// the hustler or customer dashboard based on Role.
type AuthResponse struct {
	ID            string `json:"id"`
	Token         string `json:"token"`
	Name          string `json:"name"`
	Surname       string `json:"surname,omitempty"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}
