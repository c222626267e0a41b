// filepath: internal/services/mocks/weather_mock.go
package mocks

import (
	"miocouple/internal/models"
	"miocouple/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockWeatherService struct {
	mock.Mock
}

var _ services.WeatherService = (*MockWeatherService)(nil)

func (m *MockWeatherService) GetPreferences(userID string) (*models.WeatherPreferences, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherPreferences), args.Error(1)
}

func (m *MockWeatherService) UpsertPreferences(userID string, req models.WeatherPreferencesRequest) (*models.WeatherPreferences, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherPreferences), args.Error(1)
}
