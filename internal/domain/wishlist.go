package entity

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type WishlistProduct struct {
	ProductWithImage
	AddedToWishlist time.Time `db:"added_to_wishlist" json:"added_to_wishlist"`
}

type AddToWishlistInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
}
