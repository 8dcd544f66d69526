package route

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-market/internal/config"
	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

type apiFixture struct {
	app *gin.Engine
	db  *sql.DB
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	db, err := repo.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repo.RunMigrations(db))

	cfg := &config.Config{
		Port:           "0",
		DBPath:         filepath.Join(dir, "test.db"),
		UploadsDir:     dir,
		AdminSecretKey: "super-secret",
	}

	app := gin.New()
	SetupRoute(app, db, nil, cfg)
	return &apiFixture{app: app, db: db}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	w := httptest.NewRecorder()
	f.app.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) register(t *testing.T, username, userType string) string {
	t.Helper()

	w := f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
		"userType": userType,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (f *apiFixture) seedCatalog(t *testing.T, sellerToken string, stock int) uuid.UUID {
	t.Helper()

	// Touching the seller dashboard auto-provisions the shop.
	w := f.do(t, http.MethodGet, "/api/seller/shop", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var claims struct {
		ID uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))

	productID := uuid.New()
	_, err := f.db.Exec(
		`INSERT INTO products (id, shop_id, name, description, price, category, stock, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		productID, claims.ID, "Widget", "a widget", 10.0, "misc", stock, time.Now(),
	)
	require.NoError(t, err)
	return productID
}

func checkoutBody(productID uuid.UUID, quantity int) gin.H {
	return gin.H{
		"items": []gin.H{
			{"productId": productID, "quantity": quantity, "price": 10.0},
		},
		"totalAmount": float64(quantity) * 10.0,
		"shippingAddress": gin.H{
			"fullName": "Jamie Buyer",
			"address":  "1 Main St",
			"city":     "Springfield",
			"zipCode":  "12345",
			"country":  "US",
		},
	}
}

func TestCheckoutFlow(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)
	productID := f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodPost, "/api/orders", buyerToken, checkoutBody(productID, 2))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		OrderID uuid.UUID `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	var stock int
	require.NoError(t, f.db.QueryRow(`SELECT stock FROM products WHERE id = ?`, productID).Scan(&stock))
	assert.Equal(t, 3, stock)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/orders/%s", created.OrderID), buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order entity.OrderWithItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// The placed-order notification is waiting.
	w = f.do(t, http.MethodGet, "/api/notifications/unread-count", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count entity.UnreadCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &count))
	assert.Equal(t, 1, count.Count)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)
	productID := f.seedCatalog(t, sellerToken, 1)

	w := f.do(t, http.MethodPost, "/api/orders", buyerToken, checkoutBody(productID, 3))
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var stock int
	require.NoError(t, f.db.QueryRow(`SELECT stock FROM products WHERE id = ?`, productID).Scan(&stock))
	assert.Equal(t, 1, stock)
}

func TestCheckoutRequiresBuyerRole(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	productID := f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodPost, "/api/orders", sellerToken, checkoutBody(productID, 1))
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/orders", "", checkoutBody(productID, 1))
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestSellerStatusUpdateFlow(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)
	productID := f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodPost, "/api/orders", buyerToken, checkoutBody(productID, 1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		OrderID uuid.UUID `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	statusPath := fmt.Sprintf("/api/seller/orders/%s/status", created.OrderID)

	// A skip straight to shipped is rejected.
	w = f.do(t, http.MethodPut, statusPath, sellerToken, gin.H{"status": entity.OrderStatusShipped})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = f.do(t, http.MethodPut, statusPath, sellerToken, gin.H{"status": entity.OrderStatusProcessing})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Buyers are locked out of the seller dashboard entirely.
	w = f.do(t, http.MethodPut, statusPath, buyerToken, gin.H{"status": entity.OrderStatusShipped})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Processing orders can no longer be cancelled by the buyer.
	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/orders/%s/cancel", created.OrderID), buyerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestBuyerCancelAndReturnRoutes(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)
	productID := f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodPost, "/api/orders", buyerToken, checkoutBody(productID, 1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first struct {
		OrderID uuid.UUID `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/orders/%s/cancel", first.OrderID), buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/orders", buyerToken, checkoutBody(productID, 1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var second struct {
		OrderID uuid.UUID `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	statusPath := fmt.Sprintf("/api/seller/orders/%s/status", second.OrderID)
	for _, status := range []string{entity.OrderStatusProcessing, entity.OrderStatusShipped, entity.OrderStatusDelivered} {
		w = f.do(t, http.MethodPut, statusPath, sellerToken, gin.H{"status": status})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/orders/%s/return", second.OrderID), buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMessagingFlow(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)

	var seller entity.UserResp
	w := f.do(t, http.MethodGet, "/api/users/profile", sellerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seller))

	w = f.do(t, http.MethodPost, "/api/messages", buyerToken, gin.H{
		"receiverId": seller.ID,
		"content":    "is this still available?",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Both sides see the conversation once a message exists.
	for _, token := range []string{buyerToken, sellerToken} {
		w = f.do(t, http.MethodGet, "/api/messages/conversations", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Conversations []entity.Conversation `json:"conversations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Conversations, 1)
		assert.Equal(t, "is this still available?", resp.Conversations[0].LastMessage)
		assert.False(t, resp.Conversations[0].LastMessageTime.IsZero())
	}
}

func TestReviewRoutes(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)
	productID := f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodPost, "/api/reviews", buyerToken, gin.H{
		"productId": productID,
		"rating":    4,
		"comment":   "works as described",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/reviews/product/%s", productID), "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "works as described")

	w = f.do(t, http.MethodGet, "/api/reviews/user", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Widget")

	w = f.do(t, http.MethodGet, "/api/reviews/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestPublicCatalogNeedsNoAuth(t *testing.T) {
	f := newAPIFixture(t)
	sellerToken := f.register(t, "seller", entity.UserTypeSeller)
	f.seedCatalog(t, sellerToken, 5)

	w := f.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page entity.ProductPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Widget", page.Products[0].Name)

	w = f.do(t, http.MethodGet, "/api/shops", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCategoryGate(t *testing.T) {
	f := newAPIFixture(t)
	buyerToken := f.register(t, "buyer", entity.UserTypeBuyer)

	w := f.do(t, http.MethodPost, "/api/admin/categories", buyerToken, gin.H{"name": "Electronics"})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Admin registration needs the shared secret.
	w = f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "root", "email": "root@example.com", "password": "hunter22",
		"userType": entity.UserTypeAdmin,
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "root", "email": "root@example.com", "password": "hunter22",
		"userType": entity.UserTypeAdmin, "adminSecretKey": "super-secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = f.do(t, http.MethodPost, "/api/admin/categories", resp.Token, gin.H{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/admin/categories", resp.Token, gin.H{"name": "Electronics"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electronics")

	// Admins read the same list through their own group.
	w = f.do(t, http.MethodGet, "/api/admin/categories", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Electronics")

	w = f.do(t, http.MethodGet, "/api/admin/categories", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
}
