package filestorage

import (
	"mime/multipart"
	"strings"

	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// ProfileDir is the subdirectory holding user profile documents
const ProfileDir = "profiles"

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves a file and returns the path it is stored under
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a stored file
	GetFullPath(filePath string) string
}

// ValidateImage rejects uploads whose declared content type is not image/*
func ValidateImage(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return nil
	}
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.NewCustomError(apperrors.ErrInvalidFile, "Profile document must be an image")
	}
	return nil
}
