// filepath: internal/api/handlers/goal_handler_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"miocouple/internal/models"
	"miocouple/internal/services"
	"miocouple/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupGoalTest() (*mocks.MockGoalService, *Handlers) {
	mockGoalSvc := new(mocks.MockGoalService)
	h := NewHandlers(nil, nil, nil, mockGoalSvc, nil, nil, nil, nil)
	return mockGoalSvc, h
}

func TestListGoals(t *testing.T) {
	mockGoalSvc, h := setupGoalTest()

	mockGoalSvc.On("ListGoals").Return([]models.CoupleGoal{
		{GoalID: "goal_2", Title: "newer"},
		{GoalID: "goal_1", Title: "older"},
	}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/couple-goals", nil)
	h.ListGoals(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockGoalSvc.AssertExpectations(t)

	var goals []models.CoupleGoal
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &goals))
	assert.Len(t, goals, 2)
	assert.Equal(t, "goal_2", goals[0].GoalID)
}

func TestCreateGoal(t *testing.T) {
	mockGoalSvc, h := setupGoalTest()

	created := &models.CoupleGoal{GoalID: "goal_abc", Title: "Visit Japan", Priority: "high"}
	mockGoalSvc.On("CreateGoal", mock.Anything).Return(created, nil)

	body := `{"title":"Visit Japan","priority":"high","created_by":"mio","assigned_to":"ken"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/couple-goals", strings.NewReader(body))
	h.CreateGoal(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockGoalSvc.AssertExpectations(t)

	var resp GoalCreatedResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "goal_abc", resp.GoalID)
	assert.Equal(t, "Goal created successfully", resp.Message)

	sent := mockGoalSvc.Calls[0].Arguments.Get(0).(models.GoalCreateRequest)
	assert.Equal(t, "Visit Japan", sent.Title)
	assert.Equal(t, "ken", sent.AssignedTo)
}

func TestCreateGoal_ValidationError(t *testing.T) {
	mockGoalSvc, h := setupGoalTest()

	mockGoalSvc.On("CreateGoal", mock.Anything).
		Return(nil, fmt.Errorf("%w: title is required", services.ErrValidation))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/couple-goals", strings.NewReader(`{"created_by":"mio"}`))
	h.CreateGoal(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateGoal_InvalidJSON(t *testing.T) {
	mockGoalSvc, h := setupGoalTest()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/couple-goals", strings.NewReader("not json"))
	h.CreateGoal(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockGoalSvc.AssertNotCalled(t, "CreateGoal", mock.Anything)
}
