package repository

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	entity "local-market/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *sql.DB, userType string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "user-" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "not-a-real-hash",
		UserType:     userType,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, NewUserRepository(db).CreateUser(user))
	return user
}

func seedShop(t *testing.T, db *sql.DB, ownerID uuid.UUID) *entity.Shop {
	t.Helper()

	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Test Shop",
		Description: "A shop for tests",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, NewShopRepository(db).CreateShop(shop))
	return shop
}

func seedProduct(t *testing.T, db *sql.DB, shopID uuid.UUID, price float64, stock int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shopID,
		Name:        "Test Product",
		Description: "A product for tests",
		Price:       price,
		Category:    "misc",
		Stock:       stock,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, NewProductRepository(db).CreateProduct(product))
	return product
}

func productStock(t *testing.T, db *sql.DB, productID uuid.UUID) int {
	t.Helper()

	var stock int
	require.NoError(t, db.QueryRow(`SELECT stock FROM products WHERE id = ?`, productID).Scan(&stock))
	return stock
}
