// File: handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medinatours/services/catalog"
	"medinatours/services/media"
	"medinatours/utils"
)

// CatalogHandler exposes one media-bearing entity type over HTTP. The same
// handler serves events, articles, members, merchandise and private tours;
// only the schema differs.
type CatalogHandler struct {
	svc *catalog.Service
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) label() string { return h.svc.Schema.Label }

// formPayload extracts scalar fields and media uploads from a multipart form.
func (h *CatalogHandler) formPayload(c *gin.Context) (map[string]string, *media.Upload, []media.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, nil, err
	}

	fields := map[string]string{}
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}

	var thumb *media.Upload
	if files := form.File["image"]; len(files) > 0 {
		up, err := readUpload(files[0])
		if err != nil {
			return nil, nil, nil, err
		}
		thumb = &up
	}

	var gallery []media.Upload
	if h.svc.Schema.Gallery {
		for _, fh := range form.File["media"] {
			up, err := readUpload(fh)
			if err != nil {
				return nil, nil, nil, err
			}
			gallery = append(gallery, up)
		}
	}

	return fields, thumb, gallery, nil
}

// List returns every record keyed by id.
func (h *CatalogHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, h.label()+" not found")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns one record by id.
func (h *CatalogHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.label()+" not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create inserts a record from a multipart form with at least one image.
func (h *CatalogHandler) Create(c *gin.Context) {
	fields, thumb, gallery, err := h.formPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	id, _, err := h.svc.Create(c.Request.Context(), fields, thumb, gallery)
	if err != nil {
		respondError(c, err, h.label()+" not found")
		return
	}

	utils.GetLogger().Info("record created",
		zap.String("collection", h.svc.Schema.Collection), zap.String("id", id))
	c.JSON(http.StatusCreated, gin.H{"message": h.label() + " added successfully", "id": id})
}

// Update applies a partial update, swapping media when new files are attached.
func (h *CatalogHandler) Update(c *gin.Context) {
	fields, thumb, gallery, err := h.formPayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), c.Param("id"), fields, thumb, gallery); err != nil {
		respondError(c, err, h.label()+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.label() + " updated successfully"})
}

// Delete removes a record and its stored media.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.label()+" not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.label() + " deleted successfully"})
}
