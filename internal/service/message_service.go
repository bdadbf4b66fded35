package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/renkids/homeschool-hub-api/internal/dto"
	"github.com/renkids/homeschool-hub-api/internal/models"
	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
)

type messageStore interface {
	Create(ctx context.Context, message *models.Message) error
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
}

// MessageService provides stored-and-forward messaging between users.
type MessageService struct {
	repo      messageStore
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMessageService constructs a MessageService.
func NewMessageService(repo messageStore, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Send persists a new message from the authenticated sender.
func (s *MessageService) Send(ctx context.Context, senderID string, req dto.SendMessageRequest) (*models.Message, error) {
	req.RecipientID = strings.TrimSpace(req.RecipientID)
	req.Body = strings.TrimSpace(req.Body)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "recipient_id and body are required")
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     strings.TrimSpace(req.Subject),
		Body:        req.Body,
		SentAt:      s.now().UTC(),
		Read:        false,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send message")
	}
	return message, nil
}

// ListForUser returns all messages the user sent or received, newest first.
func (s *MessageService) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	messages, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}
