package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeAdmin  = "admin"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	UserType     string    `db:"user_type"` // buyer, seller, admin
	CreatedAt    time.Time `db:"created_at"`
}

type UserResp struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserType string    `json:"user_type"`
}

type UpdateProfileInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}
