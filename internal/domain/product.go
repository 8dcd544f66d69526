package entity

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ShopID      uuid.UUID `db:"shop_id" json:"shop_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	Stock       int       `db:"stock" json:"stock"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ProductImage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
}

// ProductWithImage is the public catalog row: the product joined with
// its first image, if any.
type ProductWithImage struct {
	Product
	ImageURL string `db:"image_url" json:"image_url"`
}

type CreateProductInput struct {
	ShopID      uuid.UUID `json:"shopId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" binding:"required,gte=0"`
	Category    string    `json:"category"`
}

// SellerProductInput is the multipart form used by the seller dashboard;
// images arrive as separate file parts.
type SellerProductInput struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required,gte=0"`
	Category    string  `form:"category"`
	Stock       int     `form:"stock" binding:"gte=0"`
}

type ProductFilter struct {
	Category string    `form:"category"`
	Search   string    `form:"search"`
	ShopID   uuid.UUID `form:"shopId"`
	Page     int       `form:"page"`
	Limit    int       `form:"limit"`
}

// ProductPage is returned when pagination was requested.
type ProductPage struct {
	Products      []ProductWithImage `json:"products"`
	CurrentPage   int                `json:"currentPage"`
	TotalPages    int                `json:"totalPages"`
	TotalProducts int                `json:"totalProducts"`
}
