// filepath: internal/services/mocks/storage_mock.go
package mocks

import (
	"mime/multipart"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockStorage mocks the uploads directory operations.
type MockStorage struct {
	mock.Mock
}

var _ services.Storage = (*MockStorage)(nil)

func (m *MockStorage) SaveUpload(file multipart.File, originalName string) (string, int64, error) {
	args := m.Called(file, originalName)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) Remove(imageURL string) error {
	args := m.Called(imageURL)
	return args.Error(0)
}
