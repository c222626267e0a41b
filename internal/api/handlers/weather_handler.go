// filepath: internal/api/handlers/weather_handler.go
package handlers

import (
	"encoding/json"
	"miocouple/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

// @Summary Get weather preferences
// @Tags weather-preferences
// @Produce json
// @Param userId path string true "User identifier"
// @Success 200 {object} models.WeatherPreferences
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weather-preferences/{userId} [get]
func (h *Handlers) GetWeatherPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	prefs, err := h.Weather.GetPreferences(userID)
	if err != nil {
		respondWithServiceError(w, err, "Failed to fetch weather preferences")
		return
	}
	respondWithJSON(w, http.StatusOK, prefs)
}

// @Summary Upsert weather preferences
// @Tags weather-preferences
// @Accept json
// @Produce json
// @Param userId path string true "User identifier"
// @Param body body models.WeatherPreferencesRequest true "Preference fields"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /weather-preferences/{userId} [put]
func (h *Handlers) UpsertWeatherPreferences(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req models.WeatherPreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if _, err := h.Weather.UpsertPreferences(userID, req); err != nil {
		respondWithServiceError(w, err, "Failed to update weather preferences")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Weather preferences updated",
	})
}
