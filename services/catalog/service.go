package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/services/media"
)

// ErrValidation marks client errors; handlers map it to a 400.
var ErrValidation = errors.New("validation failed")

// Record is one catalog entity as stored in the keyed store. Every record
// carries "imageUrl" and "imagePath" for its primary image; gallery entities
// additionally carry "media", a list of assets.
type Record = map[string]interface{}

// Service is the schema-driven CRUD service shared by all media-bearing
// entity types.
type Service struct {
	Schema Schema
	Repo   entityRepo.Repository[Record]
	Media  *media.Lifecycle
}

// NewService constructs a Service for one schema.
func NewService(schema Schema, store database.KeyedStore, lifecycle *media.Lifecycle) *Service {
	return &Service{
		Schema: schema,
		Repo:   entityRepo.New[Record](store, schema.Collection),
		Media:  lifecycle,
	}
}

// parseFields validates and coerces raw form values against the schema.
// In partial mode absent fields are skipped instead of failing.
func (s *Service) parseFields(fields map[string]string, partial bool) (Record, error) {
	rec := Record{}
	for _, f := range s.Schema.Fields {
		raw, ok := fields[f.Name]
		if !ok || raw == "" {
			if f.Required && !partial {
				return nil, fmt.Errorf("%w: missing required field %q", ErrValidation, f.Name)
			}
			continue
		}
		switch f.Kind {
		case KindFloat:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q must be a number", ErrValidation, f.Name)
			}
			rec[f.Name] = v
		case KindInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q must be an integer", ErrValidation, f.Name)
			}
			rec[f.Name] = v
		case KindBool:
			rec[f.Name] = raw == "true"
		default:
			rec[f.Name] = raw
		}
	}
	return rec, nil
}

// assetPaths collects every storage key a record owns: the primary imagePath
// plus the paths of any gallery assets.
func assetPaths(rec Record) []string {
	paths := galleryPaths(rec)
	if p, ok := rec["imagePath"].(string); ok && p != "" && !containsPath(paths, p) {
		paths = append(paths, p)
	}
	return paths
}

func galleryPaths(rec Record) []string {
	var paths []string
	if gallery, ok := rec["media"].([]interface{}); ok {
		for _, item := range gallery {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if p, ok := m["path"].(string); ok && p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

func containsPath(paths []string, p string) bool {
	for _, q := range paths {
		if q == p {
			return true
		}
	}
	return false
}

// stalePaths returns the storage keys the record will no longer reference
// after a media update. A partial update only rewrites the fields the new
// uploads touch, so old blobs still referenced by surviving fields must stay.
// The gallery is replaced only when new gallery files arrive; the primary
// image is replaced by a new thumbnail or by the first asset of a new gallery.
func stalePaths(existing Record, newThumb, newGallery bool) []string {
	oldGallery := galleryPaths(existing)

	var stale []string
	if newGallery {
		stale = append(stale, oldGallery...)
	}

	oldImage, _ := existing["imagePath"].(string)
	if oldImage == "" || !(newThumb || newGallery) {
		return stale
	}
	if !newGallery && containsPath(oldGallery, oldImage) {
		// The surviving gallery still references it.
		return stale
	}
	if !containsPath(stale, oldImage) {
		stale = append(stale, oldImage)
	}
	return stale
}

func (s *Service) List(ctx context.Context) (map[string]Record, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

// uploadMedia uploads the gallery and thumbnail payloads and fills the media
// fields of rec. Returns the uploaded assets for compensation on later
// failure.
func (s *Service) uploadMedia(ctx context.Context, rec Record, thumb *media.Upload, gallery []media.Upload) ([]media.Asset, error) {
	var uploaded []media.Asset

	if s.Schema.Gallery && len(gallery) > 0 {
		assets, err := s.Media.PutAll(ctx, s.Schema.Bucket, s.Schema.KeyPrefix, gallery)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, assets...)
		rec["media"] = assets
		if thumb == nil {
			rec["imageUrl"] = assets[0].URL
			rec["imagePath"] = assets[0].Path
		}
	}

	if thumb != nil {
		asset, err := s.Media.Put(ctx, s.Schema.Bucket, s.Schema.KeyPrefix, *thumb)
		if err != nil {
			s.Media.Remove(ctx, s.Schema.Bucket, media.Paths(uploaded)...)
			return nil, err
		}
		uploaded = append(uploaded, asset)
		rec["imageUrl"] = asset.URL
		rec["imagePath"] = asset.Path
	}

	return uploaded, nil
}

// Create validates fields, uploads media, and inserts the record. A failed
// upload aborts the whole create; a failed insert removes the fresh blobs
// best-effort.
func (s *Service) Create(ctx context.Context, fields map[string]string, thumb *media.Upload, gallery []media.Upload) (string, Record, error) {
	rec, err := s.parseFields(fields, false)
	if err != nil {
		return "", nil, err
	}
	if thumb == nil && len(gallery) == 0 {
		return "", nil, fmt.Errorf("%w: no image uploaded", ErrValidation)
	}

	uploaded, err := s.uploadMedia(ctx, rec, thumb, gallery)
	if err != nil {
		return "", nil, err
	}

	rec["createdAt"] = time.Now().UnixMilli()

	id, err := s.Repo.Create(ctx, rec)
	if err != nil {
		s.Media.Remove(ctx, s.Schema.Bucket, media.Paths(uploaded)...)
		return "", nil, err
	}
	return id, rec, nil
}

// Update applies a partial field update. When new media is attached the
// sequence is upload new, swap the record, then best-effort delete the old
// blobs, so the record never references a missing blob.
func (s *Service) Update(ctx context.Context, id string, fields map[string]string, thumb *media.Upload, gallery []media.Upload) (Record, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates, err := s.parseFields(fields, true)
	if err != nil {
		return nil, err
	}

	if thumb == nil && len(gallery) == 0 {
		if len(updates) == 0 {
			return nil, fmt.Errorf("%w: no valid fields provided for update", ErrValidation)
		}
		if err := s.Repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
		return updates, nil
	}

	newGallery := s.Schema.Gallery && len(gallery) > 0
	oldPaths := stalePaths(*existing, thumb != nil, newGallery)
	uploaded, err := s.uploadMedia(ctx, updates, thumb, gallery)
	if err != nil {
		return nil, err
	}

	err = s.Media.Replace(ctx, s.Schema.Bucket, uploaded, oldPaths, func() error {
		return s.Repo.Update(ctx, id, updates)
	})
	if err != nil {
		return nil, err
	}
	return updates, nil
}

// Delete removes the record's blobs (best-effort) and then the record itself.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.Media.Remove(ctx, s.Schema.Bucket, assetPaths(*existing)...)
	return s.Repo.Delete(ctx, id)
}
