package media

import (
	"context"
)

// BlobStore is the object storage capability media files live in. Buckets are
// logical names (e.g. "event-images"); keys are slash-separated paths inside
// them.
type BlobStore interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) (string, error)
	Remove(ctx context.Context, bucket string, keys []string) error
}

// Upload is an inbound binary payload.
type Upload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Asset is a stored media file: the durable public URL plus the exact storage
// key backing it.
type Asset struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Type string `json:"type,omitempty"` // "image" or "video"
}
