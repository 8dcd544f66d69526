package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusHistory is the out-of-band audit record written for every
// successful order status transition. Best-effort only; the order itself
// is the source of truth.
type StatusHistory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"order_id" json:"orderId"`
	OldStatus string             `bson:"old_status" json:"oldStatus"`
	NewStatus string             `bson:"new_status" json:"newStatus"`
	ChangedBy string             `bson:"changed_by" json:"changedBy"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
