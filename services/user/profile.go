package user

import (
	"context"
	"fmt"

	"grindsphere/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID fetches the profile document.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// UpdateProfilePic uploads the image and writes the resulting URL onto the
// profile document. Returns the hosted URL.
func (s *DefaultUserService) UpdateProfilePic(ctx context.Context, userID, localFilePath string) (string, error) {
	url, err := s.Storage.UploadFile(ctx, localFilePath, "profile_pics")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile picture: %w", err)
	}
	if err := s.Repo.UpdateSet(userID, bson.M{"profilePicUrl": url}); err != nil {
		return "", fmt.Errorf("failed to update profile picture: %w", err)
	}
	return url, nil
}

// UpdateFCMToken registers the device token used for push delivery.
func (s *DefaultUserService) UpdateFCMToken(userID, token string) error {
	if token == "" {
		return ValidationError{Message: "fcm token is required"}
	}
	return s.Repo.UpdateSet(userID, bson.M{"fcmToken": token})
}
