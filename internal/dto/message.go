package dto

// SendMessageRequest is the payload for sending a message. The sender is
// always the authenticated caller, never a client-supplied ID.
type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Subject     string `json:"subject"`
	Body        string `json:"body" validate:"required"`
}
