// filepath: internal/services/feedback_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"miocouple/internal/logging"
	"miocouple/internal/models"
	"miocouple/internal/repository"
)

type feedbackService struct {
	Repo *repository.Repository
}

// NewFeedbackService creates the feedback board service.
func NewFeedbackService(repo *repository.Repository) FeedbackService {
	return &feedbackService{Repo: repo}
}

func (s *feedbackService) ListFeedbacks(filter models.FeedbackFilter) ([]models.Feedback, error) {
	return s.Repo.GetFeedbacks(filter)
}

// CreateFeedback validates the request and inserts the feedback row plus
// its activity-log row in one transaction.
func (s *feedbackService) CreateFeedback(req models.FeedbackCreateRequest) (*models.Feedback, error) {
	if req.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	if req.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if req.Author == "" {
		return nil, fmt.Errorf("%w: author is required", ErrValidation)
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	feedback := &models.Feedback{
		FeedbackID: repository.NewID("feedback_"),
		Type:       req.Type,
		Category:   req.Category,
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		Priority:   priority,
	}
	activity := &models.ActivityEntry{
		UserID:       req.Author,
		Action:       "create_feedback",
		ResourceType: "feedback",
		ResourceID:   feedback.FeedbackID,
		Details: map[string]interface{}{
			"type":     req.Type,
			"category": req.Category,
			"title":    req.Title,
		},
	}

	if err := s.Repo.CreateFeedback(feedback, activity); err != nil {
		return nil, err
	}

	created, err := s.Repo.GetFeedback(feedback.FeedbackID)
	if err != nil {
		return feedback, nil
	}
	return created, nil
}

// LikeFeedback increments the likes counter by one. There is no notion of
// "one like per user": every call counts.
func (s *feedbackService) LikeFeedback(feedbackID string) error {
	if err := s.Repo.LikeFeedback(feedbackID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
		return err
	}
	return nil
}

func (s *feedbackService) DeleteFeedback(feedbackID string) error {
	if err := s.Repo.DeleteFeedback(feedbackID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: feedback %s", ErrNotFound, feedbackID)
		}
		return err
	}

	entry := &models.ActivityEntry{
		Action:       "delete_feedback",
		ResourceType: "feedback",
		ResourceID:   feedbackID,
	}
	if err := s.Repo.AppendActivity(entry); err != nil {
		logging.Log.Warnf("Failed to record delete_feedback activity: %v", err)
	}
	return nil
}
