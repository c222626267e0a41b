// filepath: internal/repository/dbtx.go
package repository

import (
	"database/sql"
	"miocouple/internal/models"
)

// Tx is a wrapper around *sql.Tx that provides transactional database
// operations. It exists so that a resource insert and its activity-log row
// commit or roll back together.
type Tx struct {
	*sql.Tx
}

// InsertPhotoInTx creates a memory photo row within a transaction.
func (tx *Tx) InsertPhotoInTx(p *models.MemoryPhoto) error {
	query := `
		INSERT INTO memory_photos (
			photo_id, title, description, image_url, uploaded_by, tags, location
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.Exec(query,
		p.PhotoID, p.Title, p.Description, p.ImageURL, p.UploadedBy,
		StringifyJSON(p.Tags), p.Location,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// InsertFeedbackInTx creates a feedback row within a transaction.
func (tx *Tx) InsertFeedbackInTx(f *models.Feedback) error {
	query := `
		INSERT INTO feedbacks (
			feedback_id, type, category, title, content, author, priority
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	res, err := tx.Exec(query,
		f.FeedbackID, f.Type, f.Category, f.Title, f.Content, f.Author, f.Priority,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = id
	return nil
}

// InsertActivityInTx appends an activity-log row within a transaction.
func (tx *Tx) InsertActivityInTx(entry *models.ActivityEntry) error {
	query := `
		INSERT INTO activity_logs (user_id, action, resource_type, resource_id, details)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := tx.Exec(query,
		entry.UserID, entry.Action, entry.ResourceType, entry.ResourceID,
		StringifyJSON(entry.Details),
	)
	return err
}
