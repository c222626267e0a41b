// filepath: internal/repository/activity_repo.go
package repository

import (
	"miocouple/internal/models"
)

// AppendActivity writes a single activity-log row outside any transaction.
// Deletions record their audit row this way; creations write theirs
// transactionally via Tx.
func (s *Repository) AppendActivity(entry *models.ActivityEntry) error {
	query := `
		INSERT INTO activity_logs (user_id, action, resource_type, resource_id, details)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.DB.Exec(query,
		entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID,
		StringifyJSON(entry.Details),
	)
	return err
}

// CountActivity returns the number of audit rows. No API endpoint reads the
// log back; this backs tests and operational checks.
func (s *Repository) CountActivity() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM activity_logs").Scan(&n)
	return n, err
}
