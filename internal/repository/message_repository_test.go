package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMessageRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg := &models.Message{
		SenderID:    "parent-1",
		RecipientID: "educator-1",
		Subject:     "Week 12 plan",
		Body:        "Can we review fractions?",
	}
	err := repo.Create(context.Background(), msg)
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID, "missing id must be assigned on insert")
	assert.False(t, msg.SentAt.IsZero(), "missing sent_at must be defaulted on insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryCreateKeepsCallerFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	sent := time.Date(2024, time.May, 6, 10, 30, 0, 0, time.UTC)
	msg := &models.Message{
		ID:          "m-1",
		SenderID:    "parent-1",
		RecipientID: "educator-1",
		Body:        "hello",
		SentAt:      sent,
	}
	require.NoError(t, repo.Create(context.Background(), msg))

	assert.Equal(t, "m-1", msg.ID)
	assert.Equal(t, sent, msg.SentAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryListForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	sentA := time.Date(2024, time.May, 6, 11, 0, 0, 0, time.UTC)
	sentB := time.Date(2024, time.May, 6, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "sender_id", "recipient_id", "subject", "body", "sent_at", "read"}).
		AddRow("m-2", "educator-1", "parent-1", "Re: plan", "Sounds good", sentA, true).
		AddRow("m-1", "parent-1", "educator-1", "Plan", "Can we review fractions?", sentB, false)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE sender_id = $1 OR recipient_id = $1")).
		WithArgs("parent-1").
		WillReturnRows(rows)

	messages, err := repo.ListForUser(context.Background(), "parent-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m-2", messages[0].ID)
	assert.True(t, messages[0].Read)
	assert.Equal(t, "m-1", messages[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepositoryListForUserQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM messages")).
		WithArgs("parent-1").
		WillReturnError(assert.AnError)

	_, err := repo.ListForUser(context.Background(), "parent-1")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
