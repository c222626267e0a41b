// filepath: internal/services/photo_service_test.go
package services_test

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"

	"miocouple/internal/config"
	"miocouple/internal/models"
	"miocouple/internal/repository"
	. "miocouple/internal/services"
	"miocouple/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "test_mio.db")

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		t.Fatalf("Failed to bootstrap schema: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

func imageHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func newPhotoService(repo *repository.Repository, storage Storage, maxBytes int64) PhotoService {
	cfg := &config.Config{MaxUploadSizeBytes: maxBytes}
	return NewPhotoService(repo, storage, cfg)
}

func TestPhotoService_CreatePhoto_Validation(t *testing.T) {
	storage := new(mocks.MockStorage)
	svc := newPhotoService(nil, storage, 1<<20)

	tests := []struct {
		name     string
		req      models.PhotoCreateRequest
		file     multipart.File
		header   *multipart.FileHeader
		expected error
	}{
		{
			name:     "missing file",
			req:      models.PhotoCreateRequest{Title: "t", UploadedBy: "mio"},
			expected: ErrValidation,
		},
		{
			name:     "missing title",
			req:      models.PhotoCreateRequest{UploadedBy: "mio"},
			file:     newFakeUpload("x"),
			header:   imageHeader("a.jpg", "image/jpeg", 1),
			expected: ErrValidation,
		},
		{
			name:     "missing uploaded_by",
			req:      models.PhotoCreateRequest{Title: "t"},
			file:     newFakeUpload("x"),
			header:   imageHeader("a.jpg", "image/jpeg", 1),
			expected: ErrValidation,
		},
		{
			name:     "disallowed extension",
			req:      models.PhotoCreateRequest{Title: "t", UploadedBy: "mio"},
			file:     newFakeUpload("x"),
			header:   imageHeader("notes.txt", "image/jpeg", 1),
			expected: ErrUnsupported,
		},
		{
			name:     "disallowed mime type",
			req:      models.PhotoCreateRequest{Title: "t", UploadedBy: "mio"},
			file:     newFakeUpload("x"),
			header:   imageHeader("a.jpg", "text/plain", 1),
			expected: ErrUnsupported,
		},
		{
			name:     "oversize file",
			req:      models.PhotoCreateRequest{Title: "t", UploadedBy: "mio"},
			file:     newFakeUpload("x"),
			header:   imageHeader("a.jpg", "image/jpeg", 2<<20),
			expected: ErrTooLarge,
		},
		{
			name:     "malformed tags",
			req:      models.PhotoCreateRequest{Title: "t", UploadedBy: "mio", Tags: "not json"},
			file:     newFakeUpload("x"),
			header:   imageHeader("a.jpg", "image/jpeg", 1),
			expected: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePhoto(tt.req, tt.file, tt.header)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	// Nothing should have reached disk
	storage.AssertNotCalled(t, "SaveUpload", mock.Anything, mock.Anything)
}

func TestPhotoService_CreatePhoto_Success(t *testing.T) {
	repo := setupTestRepo(t)
	storage := new(mocks.MockStorage)
	storage.On("SaveUpload", mock.Anything, "trip.jpg").Return("/uploads/image-1-1.jpg", int64(5), nil)

	svc := newPhotoService(repo, storage, 1<<20)

	req := models.PhotoCreateRequest{
		Title:       "Trip",
		Description: "Our trip",
		UploadedBy:  "mio",
		Tags:        `["trip","summer"]`,
		Location:    "Sapa",
	}
	photo, err := svc.CreatePhoto(req, newFakeUpload("bytes"), imageHeader("trip.jpg", "image/jpeg", 5))
	assert.NoError(t, err)
	assert.NotNil(t, photo)
	assert.Equal(t, "/uploads/image-1-1.jpg", photo.ImageURL)
	assert.Equal(t, []string{"trip", "summer"}, photo.Tags)
	assert.False(t, photo.UploadDate.IsZero())

	// Row and activity entry both landed
	n, err := repo.CountActivity()
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	storage.AssertExpectations(t)
}

func TestPhotoService_CreatePhoto_CompensatesOnDBFailure(t *testing.T) {
	repo := setupTestRepo(t)
	// Force the insert to fail after the file is stored
	_, err := repo.DB.Exec("DROP TABLE memory_photos")
	assert.NoError(t, err)

	storage := new(mocks.MockStorage)
	storage.On("SaveUpload", mock.Anything, "trip.jpg").Return("/uploads/image-9-9.jpg", int64(5), nil)
	storage.On("Remove", "/uploads/image-9-9.jpg").Return(nil)

	svc := newPhotoService(repo, storage, 1<<20)

	req := models.PhotoCreateRequest{Title: "Trip", UploadedBy: "mio"}
	_, err = svc.CreatePhoto(req, newFakeUpload("bytes"), imageHeader("trip.jpg", "image/jpeg", 5))
	assert.Error(t, err)

	storage.AssertExpectations(t)
}

func TestPhotoService_DeletePhoto(t *testing.T) {
	repo := setupTestRepo(t)
	storage := new(mocks.MockStorage)
	storage.On("SaveUpload", mock.Anything, "trip.jpg").Return("/uploads/image-2-2.jpg", int64(5), nil)
	storage.On("Remove", "/uploads/image-2-2.jpg").Return(nil)

	svc := newPhotoService(repo, storage, 1<<20)

	photo, err := svc.CreatePhoto(
		models.PhotoCreateRequest{Title: "Trip", UploadedBy: "mio"},
		newFakeUpload("bytes"),
		imageHeader("trip.jpg", "image/jpeg", 5),
	)
	assert.NoError(t, err)

	assert.NoError(t, svc.DeletePhoto(photo.PhotoID))

	// Upload and delete each left an audit row
	n, err := repo.CountActivity()
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	err = svc.DeletePhoto(photo.PhotoID)
	assert.ErrorIs(t, err, ErrNotFound)

	storage.AssertExpectations(t)
}

func TestPhotoService_DeletePhoto_FileAlreadyGone(t *testing.T) {
	repo := setupTestRepo(t)
	storage := new(mocks.MockStorage)
	storage.On("SaveUpload", mock.Anything, "trip.jpg").Return("/uploads/image-3-3.jpg", int64(5), nil)
	storage.On("Remove", "/uploads/image-3-3.jpg").Return(errors.New("unlink failed"))

	svc := newPhotoService(repo, storage, 1<<20)

	photo, err := svc.CreatePhoto(
		models.PhotoCreateRequest{Title: "Trip", UploadedBy: "mio"},
		newFakeUpload("bytes"),
		imageHeader("trip.jpg", "image/jpeg", 5),
	)
	assert.NoError(t, err)

	// A failing file removal must not block the row delete
	assert.NoError(t, svc.DeletePhoto(photo.PhotoID))

	storage.AssertExpectations(t)
}
