package repository

import (
	"database/sql"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetAll() ([]entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(id uuid.UUID, name string) (bool, error)
	Delete(id uuid.UUID) (bool, error)
}

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	query := `INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, category.ID, category.Name, category.CreatedAt)
	return err
}

func (r *categoryRepository) GetAll() ([]entity.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetByName(name string) (*entity.Category, error) {
	var c entity.Category
	err := r.db.QueryRow(`SELECT id, name, created_at FROM categories WHERE name = ?`, name).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(id uuid.UUID, name string) (bool, error) {
	res, err := r.db.Exec(`UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *categoryRepository) Delete(id uuid.UUID) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
