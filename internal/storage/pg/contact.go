package pg

import (
	"context"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/portfolio-dev/portfolio-api/internal/domain"
)

func (s *Storage) CreateMessage(name, email, subject, message string) (domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	msg := domain.ContactMessage{
		Id:        uuid.New(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC().Round(time.Microsecond),
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT INTO contact_messages (id, name, email, subject, message, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.Id, msg.Name, msg.Email, msg.Subject, msg.Message, msg.CreatedAt)
	if err != nil {
		return domain.ContactMessage{}, err
	}

	return msg, nil
}

func (s *Storage) AllMessages() ([]domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, name, email, subject, message, created_at
	FROM contact_messages
	ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.Id, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteMessage removes the record unconditionally, absent ids included.
func (s *Storage) DeleteMessage(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	return err
}
