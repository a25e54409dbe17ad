package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"grindsphere/config"
	"grindsphere/utils"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using a Firebase Storage
// bucket.
type FirebaseStorageService struct {
	client         *gcs.Client
	bucketName     string
	serviceAccount *config.ServiceAccount
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(serviceAccountJSONPath, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := gcs.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs.
	sa, err := utils.LoadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &FirebaseStorageService{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

// UploadFile uploads the local file under destFolder and returns its public
// download URL.
func (s *FirebaseStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	file, err := os.Open(localFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	objectPath := filepath.Join(destFolder, filepath.Base(localFilePath))
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	// Public read so stored URLs work without signing.
	w.ACL = []gcs.ACLRule{{Entity: gcs.AllUsers, Role: gcs.RoleReader}}

	if ext := filepath.Ext(localFilePath); ext != "" {
		w.ObjectAttrs.ContentType = mime.TypeByExtension(ext)
	}

	if _, err := io.Copy(w, file); err != nil {
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return s.publicURL(objectPath), nil
}

// DeleteFile deletes an object from the bucket.
func (s *FirebaseStorageService) DeleteFile(ctx context.Context, objectID string) error {
	obj := s.client.Bucket(s.bucketName).Object(objectID)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL returns a URL for the object. With a zero expiry the public
// URL is returned; otherwise a signed URL valid for the given duration.
func (s *FirebaseStorageService) GetDownloadURL(ctx context.Context, objectID string, expires time.Duration) (string, error) {
	if expires <= 0 {
		return s.publicURL(objectID), nil
	}
	signed, err := gcs.SignedURL(s.bucketName, objectID, &gcs.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(s.serviceAccount.PrivateKey),
		Method:         "GET",
		Expires:        time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign download URL: %w", err)
	}
	return signed, nil
}

func (s *FirebaseStorageService) publicURL(objectPath string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.PathEscape(objectPath))
}
