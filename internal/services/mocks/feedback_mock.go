// filepath: internal/services/mocks/feedback_mock.go
package mocks

import (
	"miocouple/internal/models"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockFeedbackService struct {
	mock.Mock
}

var _ services.FeedbackService = (*MockFeedbackService)(nil)

func (m *MockFeedbackService) ListFeedbacks(filter models.FeedbackFilter) ([]models.Feedback, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackService) CreateFeedback(req models.FeedbackCreateRequest) (*models.Feedback, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackService) LikeFeedback(feedbackID string) error {
	args := m.Called(feedbackID)
	return args.Error(0)
}

func (m *MockFeedbackService) DeleteFeedback(feedbackID string) error {
	args := m.Called(feedbackID)
	return args.Error(0)
}
