// filepath: internal/api/handlers/main.go
package handlers

import (
	"miocouple/internal/config"
	"miocouple/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Info     services.InfoService
	Photo    services.PhotoService
	Feedback services.FeedbackService
	Goal     services.GoalService
	Message  services.MessageService
	Weather  services.WeatherService
	Auditor  services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	photo services.PhotoService,
	feedback services.FeedbackService,
	goal services.GoalService,
	message services.MessageService,
	weather services.WeatherService,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:     info,
		Photo:    photo,
		Feedback: feedback,
		Goal:     goal,
		Message:  message,
		Weather:  weather,
		Auditor:  auditor,
		Cfg:      cfg,
	}
}
