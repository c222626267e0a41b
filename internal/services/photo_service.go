// filepath: internal/services/photo_service.go
package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"miocouple/internal/config"
	"miocouple/internal/logging"
	"miocouple/internal/models"
	"miocouple/internal/repository"
	"path/filepath"
	"strings"
)

// allowedImageExtensions mirrors the original upload filter: only common
// web image formats are accepted.
var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedImageMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type photoService struct {
	Repo     *repository.Repository
	Storage  Storage
	MaxBytes int64
}

// NewPhotoService creates the memory wall service.
func NewPhotoService(repo *repository.Repository, storage Storage, cfg *config.Config) PhotoService {
	return &photoService{
		Repo:     repo,
		Storage:  storage,
		MaxBytes: cfg.MaxUploadSizeBytes,
	}
}

// ListPhotos returns all photos, newest first, with tags decoded.
func (s *photoService) ListPhotos() ([]models.MemoryPhoto, error) {
	return s.Repo.GetPhotos()
}

// CreatePhoto validates the upload, stores the file, then inserts the photo
// row and its activity-log row in one transaction. If the database write
// fails the stored file is removed again.
func (s *photoService) CreatePhoto(req models.PhotoCreateRequest, file multipart.File, header *multipart.FileHeader) (*models.MemoryPhoto, error) {
	if file == nil || header == nil {
		return nil, fmt.Errorf("%w: no image file provided", ErrValidation)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.UploadedBy == "" {
		return nil, fmt.Errorf("%w: uploaded_by is required", ErrValidation)
	}

	// Both the extension and the declared MIME type must pass, matching the
	// original filter: a .txt file with a spoofed image MIME is rejected.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return nil, fmt.Errorf("%w: only image files are allowed (got %q)", ErrUnsupported, ext)
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !allowedImageMimeTypes[ct] {
		return nil, fmt.Errorf("%w: only image files are allowed (got %q)", ErrUnsupported, ct)
	}
	if s.MaxBytes > 0 && header.Size > s.MaxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrTooLarge, s.MaxBytes)
	}

	tags := []string{}
	if req.Tags != "" {
		if err := json.Unmarshal([]byte(req.Tags), &tags); err != nil {
			return nil, fmt.Errorf("%w: tags must be a JSON array of strings", ErrValidation)
		}
	}

	imageURL, size, err := s.Storage.SaveUpload(file, header.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	photo := &models.MemoryPhoto{
		PhotoID:     repository.NewID("photo_"),
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    imageURL,
		UploadedBy:  req.UploadedBy,
		Tags:        tags,
		Location:    req.Location,
	}
	activity := &models.ActivityEntry{
		UserID:       req.UploadedBy,
		Action:       "upload_photo",
		ResourceType: "photo",
		ResourceID:   photo.PhotoID,
		Details: map[string]interface{}{
			"title":    req.Title,
			"filename": filepath.Base(imageURL),
			"size":     size,
		},
	}

	if err := s.Repo.CreatePhoto(photo, activity); err != nil {
		// Compensate: do not leave an orphaned file behind.
		if rmErr := s.Storage.Remove(imageURL); rmErr != nil {
			logging.Log.Warnf("Failed to remove orphaned upload %s: %v", imageURL, rmErr)
		}
		return nil, err
	}

	// The row was just inserted, so re-read it for the DB-assigned timestamp.
	created, err := s.Repo.GetPhoto(photo.PhotoID)
	if err != nil {
		return photo, nil
	}
	return created, nil
}

// DeletePhoto removes the photo row and its file. A file already missing
// from disk does not fail the delete.
func (s *photoService) DeletePhoto(photoID string) error {
	photo, err := s.Repo.GetPhoto(photoID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: photo %s", ErrNotFound, photoID)
		}
		return err
	}

	if err := s.Storage.Remove(photo.ImageURL); err != nil {
		logging.Log.Warnf("Failed to delete photo file %s: %v", photo.ImageURL, err)
	}

	if err := s.Repo.DeletePhoto(photoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: photo %s", ErrNotFound, photoID)
		}
		return err
	}

	// Best effort: a failed audit row never undoes the delete.
	entry := &models.ActivityEntry{
		UserID:       photo.UploadedBy,
		Action:       "delete_photo",
		ResourceType: "photo",
		ResourceID:   photoID,
	}
	if err := s.Repo.AppendActivity(entry); err != nil {
		logging.Log.Warnf("Failed to record delete_photo activity: %v", err)
	}
	return nil
}
