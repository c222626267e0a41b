// filepath: internal/api/handlers/weather_handler_test.go
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

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWeatherTest() (*mocks.MockWeatherService, *Handlers) {
	mockWeatherSvc := new(mocks.MockWeatherService)
	h := NewHandlers(nil, nil, nil, nil, nil, mockWeatherSvc, nil, nil)
	return mockWeatherSvc, h
}

func TestGetWeatherPreferences(t *testing.T) {
	mockWeatherSvc, h := setupWeatherTest()

	mockWeatherSvc.On("GetPreferences", "mio").Return(&models.WeatherPreferences{
		UserID:   "mio",
		Location: "Hanoi",
		Units:    "metric",
	}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/weather-preferences/mio", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "mio"})
	h.GetWeatherPreferences(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockWeatherSvc.AssertExpectations(t)

	var prefs models.WeatherPreferences
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &prefs))
	assert.Equal(t, "Hanoi", prefs.Location)
	assert.Equal(t, "metric", prefs.Units)
}

func TestGetWeatherPreferences_NotFound(t *testing.T) {
	mockWeatherSvc, h := setupWeatherTest()

	mockWeatherSvc.On("GetPreferences", "nobody").
		Return(nil, fmt.Errorf("%w: no preferences for user nobody", services.ErrNotFound))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/weather-preferences/nobody", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "nobody"})
	h.GetWeatherPreferences(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpsertWeatherPreferences(t *testing.T) {
	mockWeatherSvc, h := setupWeatherTest()

	mockWeatherSvc.On("UpsertPreferences", "mio", models.WeatherPreferencesRequest{
		Location: "Hue",
		Units:    "imperial",
	}).Return(&models.WeatherPreferences{UserID: "mio", Location: "Hue", Units: "imperial"}, nil)

	body := `{"location":"Hue","units":"imperial"}`
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/weather-preferences/mio", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"userId": "mio"})
	h.UpsertWeatherPreferences(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockWeatherSvc.AssertExpectations(t)

	var resp MessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestUpsertWeatherPreferences_InvalidJSON(t *testing.T) {
	mockWeatherSvc, h := setupWeatherTest()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/weather-preferences/mio", strings.NewReader("}{"))
	req = mux.SetURLVars(req, map[string]string{"userId": "mio"})
	h.UpsertWeatherPreferences(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockWeatherSvc.AssertNotCalled(t, "UpsertPreferences", mock.Anything, mock.Anything)
}
