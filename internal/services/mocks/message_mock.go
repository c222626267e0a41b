// filepath: internal/services/mocks/message_mock.go
package mocks

import (
	"miocouple/internal/models"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockMessageService struct {
	mock.Mock
}

var _ services.MessageService = (*MockMessageService)(nil)

func (m *MockMessageService) ListMessages() ([]models.Message, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageService) CreateMessage(req models.MessageCreateRequest) (*models.Message, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}
