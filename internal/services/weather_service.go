// filepath: internal/services/weather_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"miocouple/internal/models"
	"miocouple/internal/repository"
)

type weatherService struct {
	Repo *repository.Repository
}

// NewWeatherService creates the weather preferences service.
func NewWeatherService(repo *repository.Repository) WeatherService {
	return &weatherService{Repo: repo}
}

func (s *weatherService) GetPreferences(userID string) (*models.WeatherPreferences, error) {
	prefs, err := s.Repo.GetWeatherPreferences(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no preferences for user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	return prefs, nil
}

func (s *weatherService) UpsertPreferences(userID string, req models.WeatherPreferencesRequest) (*models.WeatherPreferences, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	units := req.Units
	if units == "" {
		units = "metric"
	}

	prefs := &models.WeatherPreferences{
		UserID:   userID,
		Location: req.Location,
		Units:    units,
	}
	if err := s.Repo.UpsertWeatherPreferences(prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
