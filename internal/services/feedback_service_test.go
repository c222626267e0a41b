// filepath: internal/services/feedback_service_test.go
package services_test

import (
	"testing"

	"miocouple/internal/models"
	. "miocouple/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackService_CreateFeedback_Defaults(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewFeedbackService(repo)

	created, err := svc.CreateFeedback(models.FeedbackCreateRequest{
		Type:     "suggestion",
		Category: "activities",
		Title:    "More hiking",
		Content:  "We should hike more often",
		Author:   "mio",
	})
	assert.NoError(t, err)
	assert.Equal(t, "medium", created.Priority, "priority defaults to medium")
	assert.Equal(t, "open", created.Status, "status defaults to open")
	assert.Equal(t, 0, created.Likes)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestFeedbackService_CreateFeedback_Validation(t *testing.T) {
	svc := NewFeedbackService(nil)

	valid := models.FeedbackCreateRequest{
		Type:     "suggestion",
		Category: "activities",
		Title:    "t",
		Content:  "c",
		Author:   "mio",
	}

	tests := []struct {
		name   string
		mutate func(*models.FeedbackCreateRequest)
	}{
		{"missing type", func(r *models.FeedbackCreateRequest) { r.Type = "" }},
		{"missing category", func(r *models.FeedbackCreateRequest) { r.Category = "" }},
		{"missing title", func(r *models.FeedbackCreateRequest) { r.Title = "" }},
		{"missing content", func(r *models.FeedbackCreateRequest) { r.Content = "" }},
		{"missing author", func(r *models.FeedbackCreateRequest) { r.Author = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := svc.CreateFeedback(req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFeedbackService_LikeFeedback_NotFound(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewFeedbackService(repo)

	err := svc.LikeFeedback("feedback_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWeatherService_UpsertDefaultsUnits(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewWeatherService(repo)

	prefs, err := svc.UpsertPreferences("mio", models.WeatherPreferencesRequest{Location: "Hanoi"})
	assert.NoError(t, err)
	assert.Equal(t, "metric", prefs.Units)

	read, err := svc.GetPreferences("mio")
	assert.NoError(t, err)
	assert.Equal(t, "Hanoi", read.Location)

	_, err = svc.GetPreferences("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalService_CreateGoal(t *testing.T) {
	repo := setupTestRepo(t)
	svc := NewGoalService(repo)

	_, err := svc.CreateGoal(models.GoalCreateRequest{CreatedBy: "mio"})
	assert.ErrorIs(t, err, ErrValidation)

	goal, err := svc.CreateGoal(models.GoalCreateRequest{Title: "Learn to cook", CreatedBy: "mio"})
	assert.NoError(t, err)
	assert.Equal(t, "medium", goal.Priority)

	goals, err := svc.ListGoals()
	assert.NoError(t, err)
	assert.Len(t, goals, 1)
}
