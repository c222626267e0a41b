// filepath: internal/services/goal_service.go
package services

import (
	"fmt"
	"miocouple/internal/models"
	"miocouple/internal/repository"
)

type goalService struct {
	Repo *repository.Repository
}

// NewGoalService creates the couple goals service.
func NewGoalService(repo *repository.Repository) GoalService {
	return &goalService{Repo: repo}
}

func (s *goalService) ListGoals() ([]models.CoupleGoal, error) {
	return s.Repo.GetGoals()
}

func (s *goalService) CreateGoal(req models.GoalCreateRequest) (*models.CoupleGoal, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.CreatedBy == "" {
		return nil, fmt.Errorf("%w: created_by is required", ErrValidation)
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	goal := &models.CoupleGoal{
		GoalID:      repository.NewID("goal_"),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		TargetDate:  req.TargetDate,
		CreatedBy:   req.CreatedBy,
		AssignedTo:  req.AssignedTo,
		Notes:       req.Notes,
	}
	if err := s.Repo.CreateGoal(goal); err != nil {
		return nil, err
	}
	return goal, nil
}
