// filepath: internal/api/router.go
package api

import (
	"miocouple/internal/api/handlers"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router: API endpoints, static serving of
// uploaded images, and the swagger UI.
func SetupRouter(h *handlers.Handlers, uploadsRoot string) http.Handler {
	r := mux.NewRouter()

	// System endpoints
	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := r.PathPrefix("/api").Subrouter()

	// Memory wall
	api.HandleFunc("/memory-photos", h.ListPhotos).Methods("GET")
	api.HandleFunc("/memory-photos", h.UploadPhoto).Methods("POST")
	api.HandleFunc("/memory-photos/{photoId}", h.DeletePhoto).Methods("DELETE")

	// Feedback board
	api.HandleFunc("/feedbacks", h.ListFeedbacks).Methods("GET")
	api.HandleFunc("/feedbacks", h.CreateFeedback).Methods("POST")
	api.HandleFunc("/feedbacks/{feedbackId}/like", h.LikeFeedback).Methods("PUT")
	api.HandleFunc("/feedbacks/{feedbackId}", h.DeleteFeedback).Methods("DELETE")

	// Couple goals
	api.HandleFunc("/couple-goals", h.ListGoals).Methods("GET")
	api.HandleFunc("/couple-goals", h.CreateGoal).Methods("POST")

	// Love messages
	api.HandleFunc("/messages", h.ListMessages).Methods("GET")
	api.HandleFunc("/messages", h.CreateMessage).Methods("POST")

	// Weather preferences
	api.HandleFunc("/weather-preferences/{userId}", h.GetWeatherPreferences).Methods("GET")
	api.HandleFunc("/weather-preferences/{userId}", h.UpsertWeatherPreferences).Methods("PUT")

	// Uploaded images, served read-only
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsRoot))),
	)

	// The React frontend is served separately and calls this API cross-origin.
	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		ghandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(r)
}
