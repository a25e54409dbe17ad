package storage

import (
	"context"
	"fmt"
	"time"

	"grindsphere/config"
)

// StorageService defines the interface for object storage operations.
// Uploads return the hosted URL that screens store on their documents.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, objectID string) error
	GetDownloadURL(ctx context.Context, objectID string, expires time.Duration) (string, error)
}

// New builds the configured storage backend.
func New() (StorageService, error) {
	switch config.AppConfig.StorageBackend {
	case "cloudinary":
		return NewCloudinaryStorageService(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
	case "firebase":
		return NewFirebaseStorageService(
			config.AppConfig.FirebaseCredentialsFile,
			config.AppConfig.FirebaseStorageBucket,
		)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
