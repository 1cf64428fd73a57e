package file

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/workzen/workzen-backend-go/internal/domain/leave"
	"github.com/workzen/workzen-backend-go/internal/pkg/storage"
	"github.com/workzen/workzen-backend-go/internal/pkg/validator"
)

// MaxFileSize is the upload ceiling for supporting documents.
const MaxFileSize = 5 << 20 // 5 MiB

// FileService validates and stores uploaded documents. All upload paths
// (apply, attach, achievements) go through it.
type FileService struct {
	storage storage.FileStorage
}

func NewFileService(st storage.FileStorage) *FileService {
	return &FileService{storage: st}
}

// ValidateDocument enforces the PDF-only and size rules without touching
// storage. Size is the declared size from the multipart header.
func (s *FileService) ValidateDocument(filename string, size int64) error {
	if !validator.IsPDFFilename(filename) {
		return leave.ErrFileTypeNotAllowed
	}
	if size > MaxFileSize {
		return leave.ErrFileSizeExceeds
	}
	return nil
}

// StoreDocument validates and persists one upload under the given category
// (e.g. "leave", "achievement"). The stored path is opaque to callers.
func (s *FileService) StoreDocument(ctx context.Context, category, userID string, file io.Reader, filename string, size int64) (string, error) {
	if err := s.ValidateDocument(filename, size); err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/%s/%s.pdf", category, userID, uuid.NewString())

	// The declared size is not trusted; the reader itself is capped.
	stored, err := s.storage.Upload(ctx, io.LimitReader(file, MaxFileSize), path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to store document %s: %w", filename, err)
	}

	return stored, nil
}

func (s *FileService) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *FileService) GetFileURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path)
}
