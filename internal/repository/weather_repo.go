// filepath: internal/repository/weather_repo.go
package repository

import (
	"miocouple/internal/models"
	"time"
)

// GetWeatherPreferences retrieves the preferences row for a user. Returns
// sql.ErrNoRows when the user has none yet.
func (s *Repository) GetWeatherPreferences(userID string) (*models.WeatherPreferences, error) {
	query := "SELECT user_id, location, units, updated_at FROM weather_preferences WHERE user_id = ?"
	var p models.WeatherPreferences
	err := s.DB.QueryRow(query, userID).Scan(&p.UserID, &p.Location, &p.Units, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertWeatherPreferences creates or replaces the preferences row for a user.
func (s *Repository) UpsertWeatherPreferences(p *models.WeatherPreferences) error {
	query := `
		INSERT INTO weather_preferences (user_id, location, units, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			location = excluded.location,
			units = excluded.units,
			updated_at = excluded.updated_at
	`
	p.UpdatedAt = time.Now().UTC()
	_, err := s.DB.Exec(query, p.UserID, p.Location, p.Units, p.UpdatedAt)
	return err
}
