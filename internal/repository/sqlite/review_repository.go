package repository

import (
	"database/sql"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type ReviewRepository interface {
	Create(review *entity.Review) error
	Update(id, userID uuid.UUID, rating int, comment string) (bool, error)
	GetByProduct(productID uuid.UUID) ([]entity.ReviewWithUser, error)
	GetByUser(userID uuid.UUID) ([]entity.ReviewWithProduct, error)
}

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, product_id, rating, comment, edited, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		review.ID, review.UserID, review.ProductID, review.Rating,
		review.Comment, review.Edited, review.CreatedAt,
	)
	return err
}

// Update only touches the author's own review and flags it as edited.
func (r *reviewRepository) Update(id, userID uuid.UUID, rating int, comment string) (bool, error) {
	query := `UPDATE reviews SET rating = ?, comment = ?, edited = 1 WHERE id = ? AND user_id = ?`
	res, err := r.db.Exec(query, rating, comment, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *reviewRepository) GetByProduct(productID uuid.UUID) ([]entity.ReviewWithUser, error) {
	query := `
		SELECT r.id, r.user_id, r.product_id, r.rating, r.comment, r.edited, r.created_at, u.username
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.product_id = ?
		ORDER BY r.created_at DESC
	`
	rows, err := r.db.Query(query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entity.ReviewWithUser
	for rows.Next() {
		var rv entity.ReviewWithUser
		if err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Comment,
			&rv.Edited, &rv.CreatedAt, &rv.Username,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) GetByUser(userID uuid.UUID) ([]entity.ReviewWithProduct, error) {
	query := `
		SELECT r.id, r.user_id, r.product_id, r.rating, r.comment, r.edited, r.created_at,
		       p.name AS product_name,
		       COALESCE((SELECT pi.image_url FROM product_images pi WHERE pi.product_id = p.id LIMIT 1), '') AS product_image
		FROM reviews r
		JOIN products p ON r.product_id = p.id
		WHERE r.user_id = ?
		ORDER BY r.created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entity.ReviewWithProduct
	for rows.Next() {
		var rv entity.ReviewWithProduct
		if err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Comment,
			&rv.Edited, &rv.CreatedAt, &rv.ProductName, &rv.ProductImage,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
