// filepath: internal/repository/photo_repo.go
package repository

import (
	"database/sql"
	"miocouple/internal/models"
)

const photoColumns = "id, photo_id, title, description, image_url, uploaded_by, tags, location, upload_date"

// scanPhoto scans one row into a MemoryPhoto, decoding the tags column.
func scanPhoto(row interface{ Scan(...interface{}) error }) (*models.MemoryPhoto, error) {
	var p models.MemoryPhoto
	var tagsJSON string
	err := row.Scan(
		&p.ID, &p.PhotoID, &p.Title, &p.Description, &p.ImageURL,
		&p.UploadedBy, &tagsJSON, &p.Location, &p.UploadDate,
	)
	if err != nil {
		return nil, err
	}
	p.Tags = ParseStringList(tagsJSON, []string{})
	return &p, nil
}

// CreatePhoto inserts a photo row and, when log is non-nil, its activity-log
// row in one transaction.
func (s *Repository) CreatePhoto(p *models.MemoryPhoto, log *models.ActivityEntry) error {
	tx, err := s.BeginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.InsertPhotoInTx(p); err != nil {
		return err
	}
	if log != nil {
		if err := tx.InsertActivityInTx(log); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetPhoto retrieves a photo by its business key. Returns sql.ErrNoRows
// when absent.
func (s *Repository) GetPhoto(photoID string) (*models.MemoryPhoto, error) {
	query := "SELECT " + photoColumns + " FROM memory_photos WHERE photo_id = ?"
	return scanPhoto(s.DB.QueryRow(query, photoID))
}

// GetPhotos retrieves all photos, newest first. The id tie-break keeps the
// order deterministic when upload_date has second resolution.
func (s *Repository) GetPhotos() ([]models.MemoryPhoto, error) {
	query := "SELECT " + photoColumns + " FROM memory_photos ORDER BY upload_date DESC, id DESC"
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize an empty, non-nil slice to ensure JSON marshals to [] instead of null.
	photos := make([]models.MemoryPhoto, 0)
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		photos = append(photos, *p)
	}
	return photos, rows.Err()
}

// DeletePhoto deletes a photo row by its business key. Returns
// sql.ErrNoRows when no row matched.
func (s *Repository) DeletePhoto(photoID string) error {
	res, err := s.DB.Exec("DELETE FROM memory_photos WHERE photo_id = ?", photoID)
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
