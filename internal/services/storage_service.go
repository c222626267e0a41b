// filepath: internal/services/storage_service.go
package services

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"miocouple/internal/config"
	"miocouple/internal/logging"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// StorageService manages the uploads directory on local disk. Stored files
// are addressed by server-relative URLs under /uploads/.
type StorageService struct {
	UploadsRoot string
}

// NewStorageService creates a new StorageService.
func NewStorageService(cfg *config.Config) *StorageService {
	return &StorageService{
		UploadsRoot: cfg.Database.UploadsRoot,
	}
}

// EnsureRoot creates the uploads directory if it does not exist.
func (s *StorageService) EnsureRoot() error {
	return os.MkdirAll(s.UploadsRoot, 0755)
}

// SaveUpload streams an uploaded file to disk under a collision-resistant
// generated name (image-<unixms>-<random>.<ext>) and returns the
// server-relative URL it will be served from.
func (s *StorageService) SaveUpload(file multipart.File, originalName string) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), rand.Intn(1e9), ext)

	dst, err := s.validatePath(filename)
	if err != nil {
		return "", 0, err
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", 0, fmt.Errorf("could not create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, file)
	if err != nil {
		os.Remove(dst)
		return "", 0, fmt.Errorf("could not write file: %w", err)
	}

	return "/uploads/" + filename, size, nil
}

// Remove deletes the stored file behind a server-relative image URL. A file
// that is already gone is not an error; delete stays idempotent.
func (s *StorageService) Remove(imageURL string) error {
	filename := path.Base(imageURL)
	dst, err := s.validatePath(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", dst, err)
	}
	return nil
}

// validatePath joins a filename onto the uploads root and ensures the
// result stays inside it.
func (s *StorageService) validatePath(filename string) (string, error) {
	fullPath := filepath.Join(s.UploadsRoot, filename)
	cleanedPath := filepath.Clean(fullPath)
	cleanedRoot := filepath.Clean(s.UploadsRoot)

	if !strings.HasPrefix(cleanedPath, cleanedRoot) || cleanedPath == cleanedRoot {
		logging.Log.Warnf("Path traversal attempt blocked for: %s", fullPath)
		return "", fmt.Errorf("invalid path")
	}
	return cleanedPath, nil
}
