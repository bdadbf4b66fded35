package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renkids/homeschool-hub-api/internal/dto"
	"github.com/renkids/homeschool-hub-api/internal/models"
	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
	"github.com/renkids/homeschool-hub-api/pkg/response"
)

type messageService interface {
	Send(ctx context.Context, senderID string, req dto.SendMessageRequest) (*models.Message, error)
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
}

// MessageHandler exposes messaging endpoints.
type MessageHandler struct {
	service messageService
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(service messageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send godoc
// @Summary Send a message to another user
// @Tags Messages
// @Accept json
// @Produce json
// @Param payload body dto.SendMessageRequest true "Message"
// @Success 201 {object} response.Envelope
// @Router /messages/send [post]
func (h *MessageHandler) Send(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.ErrMalformedBody)
		return
	}
	message, err := h.service.Send(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message)
}

// List godoc
// @Summary List messages for a user
// @Tags Messages
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "userId query parameter is required"))
		return
	}
	messages, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}
