// filepath: internal/repository/message_repo.go
package repository

import (
	"miocouple/internal/models"
)

const messageColumns = "id, message_id, content, sender_info, journey_section, created_at"

func scanMessage(row interface{ Scan(...interface{}) error }) (*models.Message, error) {
	var m models.Message
	err := row.Scan(
		&m.ID, &m.MessageID, &m.Content, &m.SenderInfo, &m.JourneySection, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMessage inserts a love message row.
func (s *Repository) CreateMessage(m *models.Message) error {
	query := `
		INSERT INTO messages (message_id, content, sender_info, journey_section)
		VALUES (?, ?, ?, ?)
	`
	res, err := s.DB.Exec(query, m.MessageID, m.Content, m.SenderInfo, m.JourneySection)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// GetMessages retrieves all messages, newest first.
func (s *Repository) GetMessages() ([]models.Message, error) {
	query := "SELECT " + messageColumns + " FROM messages ORDER BY created_at DESC, id DESC"
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}
