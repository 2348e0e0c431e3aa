// File: handlers/helpers.go
package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	availabilityRepo "medinatours/database/repository/availability"
	entityRepo "medinatours/database/repository/entity"
	sessionRepo "medinatours/database/repository/session"
	subscriberRepo "medinatours/database/repository/subscriber"
	"medinatours/services/catalog"
	"medinatours/services/media"
	"medinatours/utils"
)

// respondError maps service errors onto HTTP statuses: not-found sentinels to
// 404, validation and conflict sentinels to 400, anything else to a logged 500.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, entityRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, catalog.ErrValidation),
		errors.Is(err, availabilityRepo.ErrSlotUnavailable),
		errors.Is(err, sessionRepo.ErrAlreadyBooked),
		errors.Is(err, subscriberRepo.ErrAlreadySubscribed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("request failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// readUpload buffers one multipart file into an in-memory upload payload.
func readUpload(fh *multipart.FileHeader) (media.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return media.Upload{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return media.Upload{}, err
	}
	return media.Upload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}, nil
}
