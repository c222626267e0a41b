// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"miocouple/internal/logging"
	"miocouple/internal/services"
	"net/http"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PhotoCreatedResponse is the POST /api/memory-photos success envelope.
type PhotoCreatedResponse struct {
	Success  bool   `json:"success"`
	PhotoID  string `json:"photoId"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}

// FeedbackCreatedResponse is the POST /api/feedbacks success envelope.
type FeedbackCreatedResponse struct {
	Success    bool   `json:"success"`
	FeedbackID string `json:"feedbackId"`
	Message    string `json:"message"`
}

// GoalCreatedResponse is the POST /api/couple-goals success envelope.
type GoalCreatedResponse struct {
	Success bool   `json:"success"`
	GoalID  string `json:"goalId"`
	Message string `json:"message"`
}

// MessageCreatedResponse is the POST /api/messages success envelope.
type MessageCreatedResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// HealthResponse is the GET /api/health body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a logged 500 with a generic message.
func respondWithServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnsupported):
		respondWithError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, services.ErrTooLarge):
		respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		logging.Log.Errorf("%s: %v", fallback, err)
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}
