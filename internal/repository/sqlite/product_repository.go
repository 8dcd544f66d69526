package repository

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type ProductRepository interface {
	CreateProduct(product *entity.Product) error
	CreateProductImage(img *entity.ProductImage) error
	List(filter entity.ProductFilter) ([]entity.ProductWithImage, error)
	Count(filter entity.ProductFilter) (int, error)
	GetByID(id uuid.UUID) (*entity.ProductWithImage, error)
	GetByShopOwner(ownerID uuid.UUID) ([]entity.ProductWithImage, error)
	UpdateProduct(product *entity.Product) error
	UpdateProductImage(productID uuid.UUID, imageURL string) error
	DeleteProduct(productID, ownerID uuid.UUID) (bool, error)
	DeleteProductImages(productID uuid.UUID) error
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// productWithImageColumns joins each product with its first image; products
// without an image come back with an empty image_url.
const productWithImageColumns = `
	p.id, p.shop_id, p.name, p.description, p.price, p.category, p.stock, p.created_at,
	COALESCE((SELECT pi.image_url FROM product_images pi WHERE pi.product_id = p.id LIMIT 1), '') AS image_url
`

func scanProductWithImage(scanner interface{ Scan(...interface{}) error }) (*entity.ProductWithImage, error) {
	var p entity.ProductWithImage
	err := scanner.Scan(
		&p.ID, &p.ShopID, &p.Name, &p.Description, &p.Price,
		&p.Category, &p.Stock, &p.CreatedAt, &p.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) CreateProduct(product *entity.Product) error {
	query := `
		INSERT INTO products (id, shop_id, name, description, price, category, stock, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		product.ID, product.ShopID, product.Name, product.Description,
		product.Price, product.Category, product.Stock, product.CreatedAt,
	)
	return err
}

func (r *productRepository) CreateProductImage(img *entity.ProductImage) error {
	query := `INSERT INTO product_images (id, product_id, image_url) VALUES (?, ?, ?)`
	_, err := r.db.Exec(query, img.ID, img.ProductID, img.ImageURL)
	return err
}

func filterClauses(filter entity.ProductFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if filter.Category != "" {
		clauses = append(clauses, "p.category = ?")
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		clauses = append(clauses, "(p.name LIKE ? OR p.description LIKE ?)")
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}
	if filter.ShopID != uuid.Nil {
		clauses = append(clauses, "p.shop_id = ?")
		args = append(args, filter.ShopID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *productRepository) List(filter entity.ProductFilter) ([]entity.ProductWithImage, error) {
	where, args := filterClauses(filter)
	query := `SELECT ` + productWithImageColumns + ` FROM products p` + where + ` ORDER BY p.created_at DESC`

	if filter.Page > 0 && filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.ProductWithImage
	for rows.Next() {
		p, err := scanProductWithImage(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) Count(filter entity.ProductFilter) (int, error) {
	where, args := filterClauses(filter)
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products p`+where, args...).Scan(&total)
	return total, err
}

func (r *productRepository) GetByID(id uuid.UUID) (*entity.ProductWithImage, error) {
	row := r.db.QueryRow(`SELECT `+productWithImageColumns+` FROM products p WHERE p.id = ?`, id)
	p, err := scanProductWithImage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) GetByShopOwner(ownerID uuid.UUID) ([]entity.ProductWithImage, error) {
	query := `
		SELECT ` + productWithImageColumns + `
		FROM products p
		WHERE p.shop_id IN (SELECT id FROM shops WHERE owner_id = ?)
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.ProductWithImage
	for rows.Next() {
		p, err := scanProductWithImage(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) UpdateProduct(product *entity.Product) error {
	query := `
		UPDATE products SET name = ?, description = ?, price = ?, category = ?, stock = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query,
		product.Name, product.Description, product.Price,
		product.Category, product.Stock, product.ID,
	)
	return err
}

func (r *productRepository) UpdateProductImage(productID uuid.UUID, imageURL string) error {
	res, err := r.db.Exec(`UPDATE product_images SET image_url = ? WHERE product_id = ?`, imageURL, productID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// product had no image row yet
		img := entity.ProductImage{ID: uuid.New(), ProductID: productID, ImageURL: imageURL}
		return r.CreateProductImage(&img)
	}
	return nil
}

func (r *productRepository) DeleteProduct(productID, ownerID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM products
		WHERE id = ? AND shop_id IN (SELECT id FROM shops WHERE owner_id = ?)
	`
	res, err := r.db.Exec(query, productID, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *productRepository) DeleteProductImages(productID uuid.UUID) error {
	_, err := r.db.Exec(`DELETE FROM product_images WHERE product_id = ?`, productID)
	return err
}
