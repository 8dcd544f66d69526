package entity

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	Edited    bool      `db:"edited" json:"edited"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ReviewWithUser struct {
	Review
	Username string `db:"username" json:"username"`
}

type ReviewWithProduct struct {
	Review
	ProductName  string `db:"product_name" json:"product_name"`
	ProductImage string `db:"product_image" json:"product_image"`
}

type CreateReviewInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
}

type UpdateReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
