package media

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryBlobStore implements BlobStore on Cloudinary. Logical bucket and
// key are joined into the asset's public ID.
type CloudinaryBlobStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryBlobStore creates a BlobStore backed by Cloudinary.
func NewCloudinaryBlobStore(cloudName, apiKey, apiSecret string) (*CloudinaryBlobStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryBlobStore{cld: cld}, nil
}

func publicID(bucket, key string) string {
	return bucket + "/" + key
}

func (s *CloudinaryBlobStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID(bucket, key),
		ResourceType: "auto",
	})
	if err != nil {
		return fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return nil
}

func (s *CloudinaryBlobStore) PublicURL(bucket, key string) (string, error) {
	img, err := s.cld.Image(publicID(bucket, key))
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary URL: %w", err)
	}
	return url, nil
}

func (s *CloudinaryBlobStore) Remove(ctx context.Context, bucket string, keys []string) error {
	var firstErr error
	for _, key := range keys {
		_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID(bucket, key)})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("cloudinary destroy failed for %s: %w", publicID(bucket, key), err)
		}
	}
	return firstErr
}
