package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meettrack-team/meettrack/errors"
	"github.com/meettrack-team/meettrack/internal/infrastructure/storage"
)

// selfieURLExpiry bounds how long an uploaded selfie link stays valid
const selfieURLExpiry = 24 * time.Hour

// maxSelfieSize caps selfie uploads at 10 MB
const maxSelfieSize = 10 << 20

// Upload handles file upload HTTP requests
type Upload struct {
	minioClient *storage.MinIOClient
	logger      *zap.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(minioClient *storage.MinIOClient, logger *zap.Logger) *Upload {
	return &Upload{
		minioClient: minioClient,
		logger:      logger,
	}
}

// UploadSelfie handles POST /uploads/selfie
// @Summary      Upload a selfie
// @Description  Stores a selfie image captured during an instant meeting
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Selfie image"
// @Success      200  {object}  map[string]interface{}  "Upload successful"
// @Failure      400  {object}  map[string]interface{}  "Missing or oversized file"
// @Failure      500  {object}  map[string]interface{}  "Upload failed"
// @Router       /uploads/selfie [post]
func (h *Upload) UploadSelfie(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "missing_file",
			"message": "multipart field 'file' is required",
		})
	}

	if fileHeader.Size > maxSelfieSize {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "file_too_large",
			"message": "selfie must be at most 10 MB",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := h.minioClient.UploadSelfie(ctx, fileHeader.Filename, src, fileHeader.Size, contentType)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("upload selfie", err))
	}

	url, err := h.minioClient.GetFileURL(ctx, objectName, selfieURLExpiry)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("selfie uploaded but failed to generate URL",
				zap.String("object_name", objectName),
				zap.Error(err))
		}
		url = ""
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"object_name": objectName,
		"url":         url,
	})
}
