// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"mime/multipart"
	"miocouple/internal/models"
)

// Auditor defines the interface for recording audit events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "upload_photo", "create_feedback")
	// actor: who did it
	// resource: what was affected (e.g., "photo:photo_01...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// PhotoService defines the interface for the memory wall service.
type PhotoService interface {
	ListPhotos() ([]models.MemoryPhoto, error)
	CreatePhoto(req models.PhotoCreateRequest, file multipart.File, header *multipart.FileHeader) (*models.MemoryPhoto, error)
	DeletePhoto(photoID string) error
}

// FeedbackService defines the interface for the feedback board service.
type FeedbackService interface {
	ListFeedbacks(filter models.FeedbackFilter) ([]models.Feedback, error)
	CreateFeedback(req models.FeedbackCreateRequest) (*models.Feedback, error)
	LikeFeedback(feedbackID string) error
	DeleteFeedback(feedbackID string) error
}

// GoalService defines the interface for the couple goals service.
type GoalService interface {
	ListGoals() ([]models.CoupleGoal, error)
	CreateGoal(req models.GoalCreateRequest) (*models.CoupleGoal, error)
}

// MessageService defines the interface for the love message service.
type MessageService interface {
	ListMessages() ([]models.Message, error)
	CreateMessage(req models.MessageCreateRequest) (*models.Message, error)
}

// WeatherService defines the interface for weather display preferences.
type WeatherService interface {
	GetPreferences(userID string) (*models.WeatherPreferences, error)
	UpsertPreferences(userID string, req models.WeatherPreferencesRequest) (*models.WeatherPreferences, error)
}

// Storage abstracts the uploads directory so handlers and tests can
// substitute a fake filesystem.
type Storage interface {
	SaveUpload(file multipart.File, originalName string) (imageURL string, size int64, err error)
	Remove(imageURL string) error
}
