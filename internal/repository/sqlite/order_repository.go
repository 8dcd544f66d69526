package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

// ErrInsufficientStock aborts the whole checkout transaction when any
// line item would push a product's stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type OrderRepository interface {
	CreateOrderTransaction(order *entity.Order, items []entity.OrderItem) error
	GetByID(orderID uuid.UUID) (*entity.Order, error)
	GetByBuyerID(buyerID uuid.UUID) ([]entity.Order, error)
	GetItemsDetailed(orderID uuid.UUID) ([]entity.OrderItemDetail, error)
	UpdateStatusIf(orderID, buyerID uuid.UUID, fromStatus, toStatus string) (bool, error)
	UpdateStatus(orderID uuid.UUID, status string) error
	GetBySellerID(sellerID uuid.UUID) ([]entity.Order, error)
	SellerHasProductInOrder(orderID, sellerID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrderTransaction durably creates the order, its item snapshots and
// the stock decrements as one unit. The decrement is guarded with
// `stock >= ?`; zero rows affected means another checkout got there first
// (or the quantity was never available) and everything rolls back.
func (r *orderRepository) CreateOrderTransaction(order *entity.Order, items []entity.OrderItem) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (id, buyer_id, total_amount, status, full_name, address, city, zip_code, country, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(orderQuery,
		order.ID, order.BuyerID, order.TotalAmount, order.Status,
		order.FullName, order.Address, order.City, order.ZipCode, order.Country,
		order.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	stockQuery := `UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`
	itemQuery := `INSERT INTO order_items (id, order_id, product_id, quantity, price) VALUES (?, ?, ?, ?, ?)`

	for _, item := range items {
		res, err := tx.Exec(stockQuery, item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to update product stock: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("product %s: %w", item.ProductID, ErrInsufficientStock)
		}

		if _, err := tx.Exec(itemQuery, item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

const orderColumns = `id, buyer_id, total_amount, status, full_name, address, city, zip_code, country, created_at`

func scanOrder(scanner interface{ Scan(...interface{}) error }) (*entity.Order, error) {
	var order entity.Order
	err := scanner.Scan(
		&order.ID, &order.BuyerID, &order.TotalAmount, &order.Status,
		&order.FullName, &order.Address, &order.City, &order.ZipCode, &order.Country,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(orderID uuid.UUID) (*entity.Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, orderID)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByBuyerID(buyerID uuid.UUID) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = ? ORDER BY created_at DESC`
	return r.queryOrders(query, buyerID)
}

// GetBySellerID returns the orders that contain at least one product from
// a shop owned by the seller.
func (r *orderRepository) GetBySellerID(sellerID uuid.UUID) ([]entity.Order, error) {
	query := `
		SELECT DISTINCT o.id, o.buyer_id, o.total_amount, o.status, o.full_name, o.address, o.city, o.zip_code, o.country, o.created_at
		FROM orders o
		JOIN order_items oi ON o.id = oi.order_id
		JOIN products p ON oi.product_id = p.id
		JOIN shops s ON p.shop_id = s.id
		WHERE s.owner_id = ?
		ORDER BY o.created_at DESC
	`
	return r.queryOrders(query, sellerID)
}

func (r *orderRepository) queryOrders(query string, args ...interface{}) ([]entity.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) GetItemsDetailed(orderID uuid.UUID) ([]entity.OrderItemDetail, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       COALESCE(p.name, '') AS product_name,
		       COALESCE(p.description, '') AS description,
		       COALESCE((SELECT pi.image_url FROM product_images pi WHERE pi.product_id = oi.product_id LIMIT 1), '') AS image_url
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ?
	`
	rows, err := r.db.Query(query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.OrderItemDetail
	for rows.Next() {
		var item entity.OrderItemDetail
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&item.ProductName, &item.Description, &item.ImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatusIf performs a guarded buyer transition: the row only changes
// when it belongs to the buyer and is still in fromStatus.
func (r *orderRepository) UpdateStatusIf(orderID, buyerID uuid.UUID, fromStatus, toStatus string) (bool, error) {
	query := `UPDATE orders SET status = ? WHERE id = ? AND buyer_id = ? AND status = ?`
	res, err := r.db.Exec(query, toStatus, orderID, buyerID, fromStatus)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *orderRepository) UpdateStatus(orderID uuid.UUID, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, orderID)
	return err
}

func (r *orderRepository) SellerHasProductInOrder(orderID, sellerID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM order_items oi
			JOIN products p ON oi.product_id = p.id
			JOIN shops s ON p.shop_id = s.id
			WHERE oi.order_id = ? AND s.owner_id = ?
		)
	`
	err := r.db.QueryRow(query, orderID, sellerID).Scan(&exists)
	return exists, err
}
