package entity

import (
	"time"

	"github.com/google/uuid"
)

type Shop struct {
	ID            uuid.UUID `db:"id" json:"id"`
	OwnerID       uuid.UUID `db:"owner_id" json:"owner_id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	LogoURL       string    `db:"logo_url" json:"logo_url"`
	CoverPhotoURL string    `db:"cover_photo_url" json:"cover_photo_url"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type CreateShopInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateShopProfileInput carries the multipart fields of the seller
// dashboard shop form; the logo and cover photo arrive as files.
type UpdateShopProfileInput struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
}
