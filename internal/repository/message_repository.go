package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

// MessageRepository manages persistence for user-to-user messages.
type MessageRepository struct {
	db *sqlx.DB
}

// NewMessageRepository constructs a MessageRepository.
func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts a new message record.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}
	const query = `INSERT INTO messages (id, sender_id, recipient_id, subject, body, sent_at, read)
        VALUES (:id, :sender_id, :recipient_id, :subject, :body, :sent_at, :read)`
	if _, err := r.db.NamedExecContext(ctx, query, message); err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListForUser returns every message the user sent or received, newest first.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	const query = `SELECT id, sender_id, recipient_id, subject, body, sent_at, read
        FROM messages
        WHERE sender_id = $1 OR recipient_id = $1
        ORDER BY sent_at DESC`
	var messages []models.Message
	if err := r.db.SelectContext(ctx, &messages, query, userID); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
