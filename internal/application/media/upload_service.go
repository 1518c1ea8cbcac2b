package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/catalog/backend/internal/domain/shared"
)

// ObjectStorage defines the interface for storing uploaded files.
// Implemented by the infrastructure layer (local disk, S3).
type ObjectStorage interface {
	// Put stores the object under the given key
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Delete removes the object with the given key
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for a stored object
	URL(key string) string
}

// allowedFolders are the upload destinations exposed over the API
var allowedFolders = map[string]bool{
	"categories":   true,
	"products":     true,
	"promos":       true,
	"testimonials": true,
	"documents":    true,
}

// allowedExtensions maps accepted file extensions to their content types
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".mp4":  "video/mp4",
}

// UploadInput describes one incoming file
type UploadInput struct {
	Folder   string
	Filename string
	Size     int64
	Reader   io.Reader
}

// UploadResult describes a stored file
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// UploadService validates incoming files and hands them to object storage
type UploadService struct {
	storage ObjectStorage
	maxSize int64
}

// NewUploadService creates a new UploadService. maxSize caps the accepted
// file size in bytes.
func NewUploadService(storage ObjectStorage, maxSize int64) *UploadService {
	return &UploadService{storage: storage, maxSize: maxSize}
}

// Upload validates and stores a file, returning its public URL.
// Stored names are random so uploads can never collide or be guessed.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if !allowedFolders[input.Folder] {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("Unknown upload folder: %s", input.Folder))
	}
	if input.Size <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Uploaded file is empty")
	}
	if s.maxSize > 0 && input.Size > s.maxSize {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("File exceeds the maximum size of %d bytes", s.maxSize))
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("File type %q is not allowed", ext))
	}

	key := path.Join(input.Folder, uuid.NewString()+ext)
	if err := s.storage.Put(ctx, key, input.Reader, input.Size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	return &UploadResult{
		Key:         key,
		URL:         s.storage.URL(key),
		Size:        input.Size,
		ContentType: contentType,
	}, nil
}

// Delete removes a previously uploaded file
func (s *UploadService) Delete(ctx context.Context, key string) error {
	folder, _, found := strings.Cut(key, "/")
	if !found || !allowedFolders[folder] {
		return shared.NewDomainError("INVALID_INPUT", "Invalid storage key")
	}
	return s.storage.Delete(ctx, key)
}
