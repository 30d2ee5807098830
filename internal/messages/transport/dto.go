package transport

import (
	"time"

	"customer_portal_backend/internal/messages/store"
)

// SendMessageRequest is the payload for POST /messages/booking/:id.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// MessageResponse is one message record on the wire.
type MessageResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"bookingId"`
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	IsFromCustomer bool      `json:"isFromCustomer"`
}

// MessageListResponse wraps a message listing.
type MessageListResponse struct {
	Success  bool              `json:"success"`
	Messages []MessageResponse `json:"messages"`
}

// SendMessageResponse wraps a newly appended message.
type SendMessageResponse struct {
	Success bool            `json:"success"`
	Message MessageResponse `json:"message"`
}

// ToMessageResponse maps a stored message to its wire shape.
func ToMessageResponse(msg store.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID.String(),
		BookingID:      msg.BookingID,
		CustomerID:     msg.CustomerID.String(),
		CustomerName:   msg.CustomerName,
		CustomerEmail:  msg.CustomerEmail,
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
		IsFromCustomer: msg.IsFromCustomer,
	}
}

// ToMessageListResponse maps stored messages to the wire listing.
func ToMessageListResponse(messages []store.Message) MessageListResponse {
	items := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		items[i] = ToMessageResponse(msg)
	}
	return MessageListResponse{Success: true, Messages: items}
}
