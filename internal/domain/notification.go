package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationOrderCreated    = "Order Created"
	NotificationOrderCancelled  = "Order Cancelled"
	NotificationReturnRequested = "Return Requested"
	NotificationOrderStatus     = "Order Status Update"
)

// Notification is an append-only per-user record; only is_read ever changes.
type Notification struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Type      string    `db:"type" json:"type"`
	Message   string    `db:"message" json:"message"`
	IsRead    bool      `db:"is_read" json:"is_read"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
