// filepath: internal/repository/feedback_repo.go
package repository

import (
	"database/sql"
	"miocouple/internal/models"

	"github.com/Masterminds/squirrel"
)

var feedbackColumns = []string{
	"id", "feedback_id", "type", "category", "title", "content",
	"author", "priority", "status", "likes", "created_at",
}

func scanFeedback(row interface{ Scan(...interface{}) error }) (*models.Feedback, error) {
	var f models.Feedback
	err := row.Scan(
		&f.ID, &f.FeedbackID, &f.Type, &f.Category, &f.Title, &f.Content,
		&f.Author, &f.Priority, &f.Status, &f.Likes, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFeedback inserts a feedback row and, when log is non-nil, its
// activity-log row in one transaction.
func (s *Repository) CreateFeedback(f *models.Feedback, log *models.ActivityEntry) error {
	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.InsertFeedbackInTx(f); err != nil {
		return err
	}
	if log != nil {
		if err := tx.InsertActivityInTx(log); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetFeedback retrieves a feedback row by its business key.
func (s *Repository) GetFeedback(feedbackID string) (*models.Feedback, error) {
	q := s.Builder.Select(feedbackColumns...).
		From("feedbacks").
		Where(squirrel.Eq{"feedback_id": feedbackID})
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return scanFeedback(s.DB.QueryRow(query, args...))
}

// GetFeedbacks retrieves feedback rows newest first, narrowed by the
// equality filters present in filter. Filters combine conjunctively.
func (s *Repository) GetFeedbacks(filter models.FeedbackFilter) ([]models.Feedback, error) {
	q := s.Builder.Select(feedbackColumns...).From("feedbacks")
	if filter.Type != "" {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.Category != "" {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Author != "" {
		q = q.Where(squirrel.Eq{"author": filter.Author})
	}
	q = q.OrderBy("created_at DESC", "id DESC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]models.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, *f)
	}
	return feedbacks, rows.Err()
}

// LikeFeedback increments the likes counter by exactly one. The increment
// happens inside the UPDATE, so concurrent likes cannot lose updates.
// Returns sql.ErrNoRows when the row is absent.
func (s *Repository) LikeFeedback(feedbackID string) error {
	res, err := s.DB.Exec("UPDATE feedbacks SET likes = likes + 1 WHERE feedback_id = ?", feedbackID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteFeedback deletes a feedback row by its business key. Returns
// sql.ErrNoRows when no row matched.
func (s *Repository) DeleteFeedback(feedbackID string) error {
	res, err := s.DB.Exec("DELETE FROM feedbacks WHERE feedback_id = ?", feedbackID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
