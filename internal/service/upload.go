package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/victorivanov/famhub/internal/models"
	"github.com/victorivanov/famhub/internal/storage"
)

// 25 MB, matching the blob store's single-part comfort zone.
const maxUploadSize = 25 << 20

// UploadInput describes an incoming file.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// UploadService stores attachment files and returns their descriptors.
type UploadService struct {
	store *storage.Client
}

// NewUploadService creates an UploadService.
func NewUploadService(store *storage.Client) *UploadService {
	return &UploadService{store: store}
}

// Store writes the file to the blob store under a fresh id and returns the
// attachment descriptor to embed in messages.
func (s *UploadService) Store(ctx context.Context, in UploadInput) (*models.Attachment, error) {
	if in.Size <= 0 {
		return nil, BadRequest("EMPTY_FILE", "uploaded file is empty")
	}
	if in.Size > maxUploadSize {
		return nil, BadRequest("FILE_TOO_LARGE", "uploaded file exceeds the 25 MB limit")
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileID := uuid.NewString()
	if err := s.store.Upload(ctx, fileID, in.Reader, in.Size, contentType); err != nil {
		return nil, Internal("INTERNAL", "internal server error")
	}

	return &models.Attachment{
		FileID:   fileID,
		Filename: in.Filename,
		MimeType: contentType,
		Size:     in.Size,
	}, nil
}
