package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type WishlistRepository interface {
	Add(userID, productID uuid.UUID) error
	Remove(userID, productID uuid.UUID) error
	GetByUser(userID uuid.UUID) ([]entity.WishlistProduct, error)
}

type wishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add is idempotent: re-adding an already wished product is a no-op.
func (r *wishlistRepository) Add(userID, productID uuid.UUID) error {
	query := `INSERT OR IGNORE INTO wishlists (id, user_id, product_id, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.Exec(query, uuid.New(), userID, productID, time.Now())
	return err
}

func (r *wishlistRepository) Remove(userID, productID uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM wishlists WHERE user_id = ? AND product_id = ?`, userID, productID)
	return err
}

func (r *wishlistRepository) GetByUser(userID uuid.UUID) ([]entity.WishlistProduct, error) {
	query := `
		SELECT p.id, p.shop_id, p.name, p.description, p.price, p.category, p.stock, p.created_at,
		       COALESCE((SELECT pi.image_url FROM product_images pi WHERE pi.product_id = p.id LIMIT 1), '') AS image_url,
		       w.created_at AS added_to_wishlist
		FROM wishlists w
		JOIN products p ON w.product_id = p.id
		WHERE w.user_id = ?
		ORDER BY w.created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.WishlistProduct
	for rows.Next() {
		var wp entity.WishlistProduct
		if err := rows.Scan(
			&wp.ID, &wp.ShopID, &wp.Name, &wp.Description, &wp.Price,
			&wp.Category, &wp.Stock, &wp.CreatedAt, &wp.ImageURL, &wp.AddedToWishlist,
		); err != nil {
			return nil, err
		}
		products = append(products, wp)
	}
	return products, rows.Err()
}
