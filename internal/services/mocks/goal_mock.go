// filepath: internal/services/mocks/goal_mock.go
package mocks

import (
	"miocouple/internal/models"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockGoalService struct {
	mock.Mock
}

var _ services.GoalService = (*MockGoalService)(nil)

func (m *MockGoalService) ListGoals() ([]models.CoupleGoal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CoupleGoal), args.Error(1)
}

func (m *MockGoalService) CreateGoal(req models.GoalCreateRequest) (*models.CoupleGoal, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CoupleGoal), args.Error(1)
}
