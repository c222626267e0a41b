// filepath: internal/repository/goal_repo.go
package repository

import (
	"miocouple/internal/models"
)

const goalColumns = "id, goal_id, title, description, category, priority, target_date, created_by, assigned_to, notes, created_at"

func scanGoal(row interface{ Scan(...interface{}) error }) (*models.CoupleGoal, error) {
	var g models.CoupleGoal
	err := row.Scan(
		&g.ID, &g.GoalID, &g.Title, &g.Description, &g.Category, &g.Priority,
		&g.TargetDate, &g.CreatedBy, &g.AssignedTo, &g.Notes, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGoal inserts a couple goal row. Goal creation never logged activity
// in the original system, so there is no audit row here.
func (s *Repository) CreateGoal(g *models.CoupleGoal) error {
	query := `
		INSERT INTO couple_goals (
			goal_id, title, description, category, priority, target_date,
			created_by, assigned_to, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := s.DB.Exec(query,
		g.GoalID, g.Title, g.Description, g.Category, g.Priority,
		g.TargetDate, g.CreatedBy, g.AssignedTo, g.Notes,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	g.ID = id
	return nil
}

// GetGoals retrieves all couple goals, newest first.
func (s *Repository) GetGoals() ([]models.CoupleGoal, error) {
	query := "SELECT " + goalColumns + " FROM couple_goals ORDER BY created_at DESC, id DESC"
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]models.CoupleGoal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}
