package media

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBlobStore implements BlobStore on a single Firebase Storage bucket.
// Logical buckets become the first path segment of the object name.
type GCSBlobStore struct {
	client     *storage.Client
	bucketName string
}

// NewGCSBlobStore creates a BlobStore backed by Firebase Storage.
func NewGCSBlobStore(ctx context.Context, credentialsPath, bucketName string) (*GCSBlobStore, error) {
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBlobStore{client: client, bucketName: bucketName}, nil
}

func (s *GCSBlobStore) objectPath(bucket, key string) string {
	return bucket + "/" + key
}

func (s *GCSBlobStore) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	obj := s.client.Bucket(s.bucketName).Object(s.objectPath(bucket, key))
	w := obj.NewWriter(ctx)

	// Media URLs are handed straight to browsers.
	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	w.ObjectAttrs.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

// PublicURL returns the public URL assuming the object is publicly readable.
func (s *GCSBlobStore) PublicURL(bucket, key string) (string, error) {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.PathEscape(s.objectPath(bucket, key))), nil
}

func (s *GCSBlobStore) Remove(ctx context.Context, bucket string, keys []string) error {
	var firstErr error
	for _, key := range keys {
		obj := s.client.Bucket(s.bucketName).Object(s.objectPath(bucket, key))
		if err := obj.Delete(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to delete %s: %w", s.objectPath(bucket, key), err)
		}
	}
	return firstErr
}
