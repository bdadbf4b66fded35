package models

import "time"

// Message is a stored-and-forward note between two users. Messages are
// immutable once sent; the read flag is reserved for a future inbox UI.
type Message struct {
	ID          string    `db:"id" json:"id"`
	SenderID    string    `db:"sender_id" json:"sender_id"`
	RecipientID string    `db:"recipient_id" json:"recipient_id"`
	Subject     string    `db:"subject" json:"subject,omitempty"`
	Body        string    `db:"body" json:"body"`
	SentAt      time.Time `db:"sent_at" json:"sent_at"`
	Read        bool      `db:"read" json:"read"`
}
