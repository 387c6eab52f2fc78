package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/victorivanov/famhub/internal/service"
)

// UploadHandler handles attachment file uploads.
type UploadHandler struct {
	service *service.UploadService
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// Create handles POST /api/v1/uploads. Expects a multipart form with a
// "file" part and returns the attachment descriptor.
func (h *UploadHandler) Create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "MISSING_FILE", "multipart form must include a file part")
	}

	f, err := fh.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
	}
	defer f.Close()

	attachment, err := h.service.Store(c.Request().Context(), service.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return OK(c, http.StatusCreated, attachment)
}
