// filepath: internal/api/handlers/feedback_handler.go
package handlers

import (
	"encoding/json"
	"miocouple/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

// @Summary List feedbacks
// @Description Returns feedback entries, newest first. Optional equality filters: type, category, author (combined with AND).
// @Tags feedbacks
// @Produce json
// @Param type query string false "Filter by type"
// @Param category query string false "Filter by category"
// @Param author query string false "Filter by author"
// @Success 200 {array} models.Feedback
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks [get]
func (h *Handlers) ListFeedbacks(w http.ResponseWriter, r *http.Request) {
	filter := models.FeedbackFilter{
		Type:     r.URL.Query().Get("type"),
		Category: r.URL.Query().Get("category"),
		Author:   r.URL.Query().Get("author"),
	}

	feedbacks, err := h.Feedback.ListFeedbacks(filter)
	if err != nil {
		respondWithServiceError(w, err, "Failed to fetch feedbacks")
		return
	}
	respondWithJSON(w, http.StatusOK, feedbacks)
}

// @Summary Create a feedback entry
// @Tags feedbacks
// @Accept json
// @Produce json
// @Param body body models.FeedbackCreateRequest true "Feedback fields; priority defaults to medium"
// @Success 200 {object} FeedbackCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks [post]
func (h *Handlers) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	feedback, err := h.Feedback.CreateFeedback(req)
	if err != nil {
		respondWithServiceError(w, err, "Failed to create feedback")
		return
	}

	h.Auditor.Log(r.Context(), "create_feedback", req.Author, "feedback:"+feedback.FeedbackID, map[string]interface{}{
		"type":     req.Type,
		"category": req.Category,
		"title":    req.Title,
	})

	respondWithJSON(w, http.StatusOK, FeedbackCreatedResponse{
		Success:    true,
		FeedbackID: feedback.FeedbackID,
		Message:    "Feedback created successfully",
	})
}

// @Summary Like a feedback entry
// @Description Increments the likes counter by exactly one. Calls are not de-duplicated per user.
// @Tags feedbacks
// @Produce json
// @Param feedbackId path string true "Feedback business key"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks/{feedbackId}/like [put]
func (h *Handlers) LikeFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID := mux.Vars(r)["feedbackId"]

	if err := h.Feedback.LikeFeedback(feedbackID); err != nil {
		respondWithServiceError(w, err, "Failed to like feedback")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Feedback liked",
	})
}

// @Summary Delete a feedback entry
// @Tags feedbacks
// @Produce json
// @Param feedbackId path string true "Feedback business key"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks/{feedbackId} [delete]
func (h *Handlers) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID := mux.Vars(r)["feedbackId"]

	if err := h.Feedback.DeleteFeedback(feedbackID); err != nil {
		respondWithServiceError(w, err, "Failed to delete feedback")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Feedback deleted successfully",
	})
}
