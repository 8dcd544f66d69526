package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `db:"id" json:"id"`
	SenderID   uuid.UUID `db:"sender_id" json:"sender_id"`
	ReceiverID uuid.UUID `db:"receiver_id" json:"receiver_id"`
	Content    string    `db:"content" json:"content"`
	IsRead     bool      `db:"is_read" json:"is_read"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type MessageWithSender struct {
	Message
	SenderUsername string `db:"sender_username" json:"sender_username"`
}

// Conversation is one row of the inbox: the peer, the latest message and
// how many of their messages are still unread.
type Conversation struct {
	OtherUserID     uuid.UUID `db:"other_user_id" json:"other_user_id"`
	OtherUsername   string    `db:"other_username" json:"other_username"`
	LastMessage     string    `db:"last_message" json:"last_message"`
	LastMessageTime time.Time `db:"last_message_time" json:"last_message_time"`
	UnreadCount     int       `db:"unread_count" json:"unread_count"`
}

type SendMessageInput struct {
	ReceiverID uuid.UUID `json:"receiverId" binding:"required"`
	Content    string    `json:"content" binding:"required"`
}
