package repository

import (
	"database/sql"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type UserRepository interface {
	CreateUser(user *entity.User) error
	GetByID(id uuid.UUID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdateProfile(id uuid.UUID, username, email string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, user_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.UserType, user.CreatedAt,
	)
	return err
}

func (r *userRepository) GetByID(id uuid.UUID) (*entity.User, error) {
	return r.getOne(`SELECT id, username, email, password_hash, user_type, created_at FROM users WHERE id = ?`, id)
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT id, username, email, password_hash, user_type, created_at FROM users WHERE email = ?`, email)
}

func (r *userRepository) getOne(query string, arg interface{}) (*entity.User, error) {
	var user entity.User
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.UserType, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(id uuid.UUID, username, email string) error {
	query := `UPDATE users SET username = ?, email = ? WHERE id = ?`
	_, err := r.db.Exec(query, username, email, id)
	return err
}
