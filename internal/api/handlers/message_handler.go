// filepath: internal/api/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"miocouple/internal/models"
	"net/http"
)

// @Summary List love messages
// @Description Returns all messages, newest first.
// @Tags messages
// @Produce json
// @Success 200 {array} models.Message
// @Failure 500 {object} ErrorResponse
// @Router /messages [get]
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Message.ListMessages()
	if err != nil {
		respondWithServiceError(w, err, "Failed to fetch messages")
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// @Summary Create a love message
// @Tags messages
// @Accept json
// @Produce json
// @Param body body models.MessageCreateRequest true "Message fields"
// @Success 200 {object} MessageCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages [post]
func (h *Handlers) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	message, err := h.Message.CreateMessage(req)
	if err != nil {
		respondWithServiceError(w, err, "Failed to create message")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageCreatedResponse{
		Success:   true,
		MessageID: message.MessageID,
		Message:   "Message created successfully",
	})
}
