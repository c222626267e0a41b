// filepath: internal/services/mocks/photo_mock.go
package mocks

import (
	"mime/multipart"
	"miocouple/internal/models"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockPhotoService struct {
	mock.Mock
}

var _ services.PhotoService = (*MockPhotoService)(nil)

func (m *MockPhotoService) ListPhotos() ([]models.MemoryPhoto, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MemoryPhoto), args.Error(1)
}

func (m *MockPhotoService) CreatePhoto(req models.PhotoCreateRequest, file multipart.File, header *multipart.FileHeader) (*models.MemoryPhoto, error) {
	args := m.Called(req, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MemoryPhoto), args.Error(1)
}

func (m *MockPhotoService) DeletePhoto(photoID string) error {
	args := m.Called(photoID)
	return args.Error(0)
}
