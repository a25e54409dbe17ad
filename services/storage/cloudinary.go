package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld, cloudName: cloudName}, nil
}

// UploadFile uploads the local file under destFolder and returns its secure URL.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	base := filepath.Base(localFilePath)
	publicID := strings.TrimSuffix(base, filepath.Ext(base))

	resp, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	return resp.SecureURL, nil
}

// DeleteFile removes an asset by its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, objectID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectID})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary asset: %w", err)
	}
	return nil
}

// GetDownloadURL constructs the delivery URL for an asset. Cloudinary assets
// are publicly addressable; expiry is ignored.
func (s *CloudinaryStorageService) GetDownloadURL(ctx context.Context, objectID string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", s.cloudName, objectID), nil
}
