package media

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"medinatours/utils"
)

// ErrUpload is returned when the blob store rejects a write or no retrievable
// URL can be produced for it.
var ErrUpload = errors.New("media upload failed")

// Lifecycle owns the upload/swap/delete bookkeeping for entity media. The
// ordering contract: a new blob is uploaded and the entity record pointed at
// it before any old blob is removed, so a failure mid-sequence never leaves
// the record referencing a missing blob. Removals are best-effort and never
// block the entity write they accompany.
type Lifecycle struct {
	store BlobStore
}

// NewLifecycle wraps a BlobStore.
func NewLifecycle(store BlobStore) *Lifecycle {
	return &Lifecycle{store: store}
}

func assetType(contentType string) string {
	if strings.HasPrefix(contentType, "video") {
		return "video"
	}
	return "image"
}

// Put uploads one payload under a fresh per-upload key and returns the stored
// asset. Key shape: {prefix}/{unix-millis}_{original filename}.
func (l *Lifecycle) Put(ctx context.Context, bucket, prefix string, up Upload) (Asset, error) {
	key := fmt.Sprintf("%s/%d_%s", prefix, time.Now().UnixMilli(), up.Filename)

	if err := l.store.Upload(ctx, bucket, key, up.Data, up.ContentType); err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	url, err := l.store.PublicURL(bucket, key)
	if err != nil || url == "" {
		return Asset{}, fmt.Errorf("%w: no retrievable URL for %s", ErrUpload, key)
	}
	return Asset{URL: url, Path: key, Type: assetType(up.ContentType)}, nil
}

// PutAll uploads every payload or none: on failure the already-uploaded blobs
// are removed best-effort and the error is returned.
func (l *Lifecycle) PutAll(ctx context.Context, bucket, prefix string, ups []Upload) ([]Asset, error) {
	assets := make([]Asset, 0, len(ups))
	for _, up := range ups {
		asset, err := l.Put(ctx, bucket, prefix, up)
		if err != nil {
			l.Remove(ctx, bucket, Paths(assets)...)
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

// Remove deletes blobs best-effort. Failures are logged and swallowed; a
// storage leak is tolerated, a broken entity reference is not.
func (l *Lifecycle) Remove(ctx context.Context, bucket string, paths ...string) {
	if len(paths) == 0 {
		return
	}
	if err := l.store.Remove(ctx, bucket, paths); err != nil {
		utils.GetLogger().Warn("failed to delete media",
			zap.String("bucket", bucket),
			zap.Strings("paths", paths),
			zap.Error(err))
	}
}

// Replace finalizes an upload-then-swap-then-delete sequence: swap must point
// the entity record at newAssets. If swap fails the new blobs are removed
// best-effort and the old ones stay referenced; if it succeeds the old blobs
// are removed best-effort.
func (l *Lifecycle) Replace(ctx context.Context, bucket string, newAssets []Asset, oldPaths []string, swap func() error) error {
	if err := swap(); err != nil {
		l.Remove(ctx, bucket, Paths(newAssets)...)
		return err
	}
	l.Remove(ctx, bucket, oldPaths...)
	return nil
}

// Paths collects the storage keys of assets.
func Paths(assets []Asset) []string {
	paths := make([]string, 0, len(assets))
	for _, a := range assets {
		paths = append(paths, a.Path)
	}
	return paths
}
