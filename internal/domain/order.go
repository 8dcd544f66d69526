package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusProcessing      = "processing"
	OrderStatusShipped         = "shipped"
	OrderStatusDelivered       = "delivered"
	OrderStatusCancelled       = "cancelled"
	OrderStatusReturnRequested = "return_requested"
)

type Order struct {
	ID          uuid.UUID `db:"id" json:"id"`
	BuyerID     uuid.UUID `db:"buyer_id" json:"buyer_id"`
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	Status      string    `db:"status" json:"status"`
	FullName    string    `db:"full_name" json:"full_name"`
	Address     string    `db:"address" json:"address"`
	City        string    `db:"city" json:"city"`
	ZipCode     string    `db:"zip_code" json:"zip_code"`
	Country     string    `db:"country" json:"country"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// OrderItem is an immutable snapshot of one purchased product: the price
// is captured at checkout and never follows later product edits.
type OrderItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Price     float64   `db:"price" json:"price"`
}

// OrderItemDetail joins the snapshot with current product name and image
// for the buyer's order detail view.
type OrderItemDetail struct {
	OrderItem
	ProductName string `db:"product_name" json:"product_name"`
	Description string `db:"description" json:"description"`
	ImageURL    string `db:"image_url" json:"image_url"`
}

type OrderWithItems struct {
	Order
	Items []OrderItemDetail `json:"items"`
}

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     float64   `json:"price" binding:"gte=0"`
}

type ShippingAddressInput struct {
	FullName string `json:"fullName" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	ZipCode  string `json:"zipCode" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput     `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64              `json:"totalAmount" binding:"gte=0"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}
