// filepath: internal/api/handlers/goal_handler.go
package handlers

import (
	"encoding/json"
	"miocouple/internal/models"
	"net/http"
)

// @Summary List couple goals
// @Description Returns all couple goals, newest first.
// @Tags couple-goals
// @Produce json
// @Success 200 {array} models.CoupleGoal
// @Failure 500 {object} ErrorResponse
// @Router /couple-goals [get]
func (h *Handlers) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Goal.ListGoals()
	if err != nil {
		respondWithServiceError(w, err, "Failed to fetch goals")
		return
	}
	respondWithJSON(w, http.StatusOK, goals)
}

// @Summary Create a couple goal
// @Tags couple-goals
// @Accept json
// @Produce json
// @Param body body models.GoalCreateRequest true "Goal fields; priority defaults to medium"
// @Success 200 {object} GoalCreatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /couple-goals [post]
func (h *Handlers) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req models.GoalCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	goal, err := h.Goal.CreateGoal(req)
	if err != nil {
		respondWithServiceError(w, err, "Failed to create goal")
		return
	}

	respondWithJSON(w, http.StatusOK, GoalCreatedResponse{
		Success: true,
		GoalID:  goal.GoalID,
		Message: "Goal created successfully",
	})
}
