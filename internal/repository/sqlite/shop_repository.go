package repository

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type ShopRepository interface {
	CreateShop(shop *entity.Shop) error
	GetAll() ([]entity.Shop, error)
	GetByID(id uuid.UUID) (*entity.Shop, error)
	GetByOwnerID(ownerID uuid.UUID) (*entity.Shop, error)
	UpdateShop(id, ownerID uuid.UUID, name, description string) (bool, error)
	UpdateShopProfile(ownerID uuid.UUID, name, description string, logoURL, coverPhotoURL *string) (bool, error)
}

type shopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) ShopRepository {
	return &shopRepository{db: db}
}

const shopColumns = `id, owner_id, name, description, logo_url, cover_photo_url, created_at`

func scanShop(row *sql.Row) (*entity.Shop, error) {
	var shop entity.Shop
	err := row.Scan(
		&shop.ID, &shop.OwnerID, &shop.Name, &shop.Description,
		&shop.LogoURL, &shop.CoverPhotoURL, &shop.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) CreateShop(shop *entity.Shop) error {
	query := `
		INSERT INTO shops (id, owner_id, name, description, logo_url, cover_photo_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		shop.ID, shop.OwnerID, shop.Name, shop.Description,
		shop.LogoURL, shop.CoverPhotoURL, shop.CreatedAt,
	)
	return err
}

func (r *shopRepository) GetAll() ([]entity.Shop, error) {
	rows, err := r.db.Query(`SELECT ` + shopColumns + ` FROM shops`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shops []entity.Shop
	for rows.Next() {
		var shop entity.Shop
		if err := rows.Scan(
			&shop.ID, &shop.OwnerID, &shop.Name, &shop.Description,
			&shop.LogoURL, &shop.CoverPhotoURL, &shop.CreatedAt,
		); err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}
	return shops, rows.Err()
}

func (r *shopRepository) GetByID(id uuid.UUID) (*entity.Shop, error) {
	return scanShop(r.db.QueryRow(`SELECT `+shopColumns+` FROM shops WHERE id = ?`, id))
}

func (r *shopRepository) GetByOwnerID(ownerID uuid.UUID) (*entity.Shop, error) {
	return scanShop(r.db.QueryRow(`SELECT `+shopColumns+` FROM shops WHERE owner_id = ?`, ownerID))
}

func (r *shopRepository) UpdateShop(id, ownerID uuid.UUID, name, description string) (bool, error) {
	query := `UPDATE shops SET name = ?, description = ? WHERE id = ? AND owner_id = ?`
	res, err := r.db.Exec(query, name, description, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// UpdateShopProfile updates the seller dashboard shop form; logo and
// cover photo are only touched when a new file was uploaded.
func (r *shopRepository) UpdateShopProfile(ownerID uuid.UUID, name, description string, logoURL, coverPhotoURL *string) (bool, error) {
	sets := []string{"name = ?", "description = ?"}
	args := []interface{}{name, description}

	if logoURL != nil {
		sets = append(sets, "logo_url = ?")
		args = append(args, *logoURL)
	}
	if coverPhotoURL != nil {
		sets = append(sets, "cover_photo_url = ?")
		args = append(args, *coverPhotoURL)
	}
	args = append(args, ownerID)

	query := `UPDATE shops SET ` + strings.Join(sets, ", ") + ` WHERE owner_id = ?`
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
