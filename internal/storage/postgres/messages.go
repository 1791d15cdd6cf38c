package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sunflix/backend/internal/models"
)

// ListMessages returns all contact messages, newest first.
func (s *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	const query = `SELECT id, name, email, subject, body, created_at
	FROM messages ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CreateMessage inserts a contact message.
func (s *Store) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.ID = uuid.NewString()
	const query = `INSERT INTO messages (id, name, email, subject, body)
	VALUES ($1, $2, $3, $4, $5) RETURNING created_at;`
	err := s.pool.QueryRow(ctx, query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body).
		Scan(&msg.CreatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}
