// filepath: internal/services/message_service.go
package services

import (
	"fmt"
	"miocouple/internal/models"
	"miocouple/internal/repository"
)

type messageService struct {
	Repo *repository.Repository
}

// NewMessageService creates the love message service.
func NewMessageService(repo *repository.Repository) MessageService {
	return &messageService{Repo: repo}
}

func (s *messageService) ListMessages() ([]models.Message, error) {
	return s.Repo.GetMessages()
}

func (s *messageService) CreateMessage(req models.MessageCreateRequest) (*models.Message, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	message := &models.Message{
		MessageID:      repository.NewID("msg_"),
		Content:        req.Content,
		SenderInfo:     req.SenderInfo,
		JourneySection: req.JourneySection,
	}
	if err := s.Repo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}
