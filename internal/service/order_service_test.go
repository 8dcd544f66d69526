package service

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

type orderFixture struct {
	db      *sql.DB
	svc     *OrderService
	notiSvc *NotificationService

	buyer   *entity.User
	seller  *entity.User
	shop    *entity.Shop
	product *entity.Product
}

func newOrderFixture(t *testing.T, stock int) *orderFixture {
	t.Helper()

	db, err := repo.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repo.RunMigrations(db))

	userRepo := repo.NewUserRepository(db)
	buyer := &entity.User{
		ID: uuid.New(), Username: "buyer", Email: "buyer@example.com",
		PasswordHash: "x", UserType: entity.UserTypeBuyer, CreatedAt: time.Now(),
	}
	require.NoError(t, userRepo.CreateUser(buyer))
	seller := &entity.User{
		ID: uuid.New(), Username: "seller", Email: "seller@example.com",
		PasswordHash: "x", UserType: entity.UserTypeSeller, CreatedAt: time.Now(),
	}
	require.NoError(t, userRepo.CreateUser(seller))

	shop := &entity.Shop{ID: uuid.New(), OwnerID: seller.ID, Name: "Shop", CreatedAt: time.Now()}
	require.NoError(t, repo.NewShopRepository(db).CreateShop(shop))

	product := &entity.Product{
		ID: uuid.New(), ShopID: shop.ID, Name: "Widget",
		Price: 10.0, Category: "misc", Stock: stock, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.NewProductRepository(db).CreateProduct(product))

	notificationRepo := repo.NewNotificationRepository(db)
	return &orderFixture{
		db:      db,
		svc:     NewOrderService(repo.NewOrderRepository(db), notificationRepo, nil),
		notiSvc: NewNotificationService(notificationRepo),
		buyer:   buyer,
		seller:  seller,
		shop:    shop,
		product: product,
	}
}

func (f *orderFixture) placeOrder(t *testing.T, quantity int) uuid.UUID {
	t.Helper()

	orderID, err := f.svc.CreateOrder(f.buyer.ID, entity.CreateOrderInput{
		Items: []entity.OrderItemInput{
			{ProductID: f.product.ID, Quantity: quantity, Price: f.product.Price},
		},
		TotalAmount: float64(quantity) * f.product.Price,
		ShippingAddress: entity.ShippingAddressInput{
			FullName: "Jamie Buyer", Address: "1 Main St", City: "Springfield",
			ZipCode: "12345", Country: "US",
		},
	})
	require.NoError(t, err)
	return orderID
}

func (f *orderFixture) unread(t *testing.T) int {
	t.Helper()

	count, err := f.notiSvc.UnreadCount(f.buyer.ID)
	require.NoError(t, err)
	return count
}

func TestCreateOrderEmitsNotification(t *testing.T) {
	f := newOrderFixture(t, 5)

	orderID := f.placeOrder(t, 2)

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Equal(t, 1, f.unread(t))
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(t, 1)

	_, err := f.svc.CreateOrder(f.buyer.ID, entity.CreateOrderInput{
		Items: []entity.OrderItemInput{
			{ProductID: f.product.ID, Quantity: 2, Price: 10.0},
		},
		TotalAmount: 20.0,
		ShippingAddress: entity.ShippingAddressInput{
			FullName: "Jamie Buyer", Address: "1 Main St", City: "Springfield",
			ZipCode: "12345", Country: "US",
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// A failed checkout leaves nothing behind, notifications included.
	orders, err := f.svc.ListOrders(f.buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 0, f.unread(t))
}

func TestCancelOrderOnlyOnce(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	require.NoError(t, f.svc.CancelOrder(f.buyer.ID, orderID))
	assert.Equal(t, 2, f.unread(t)) // created + cancelled

	err := f.svc.CancelOrder(f.buyer.ID, orderID)
	require.ErrorIs(t, err, ErrOrderNotCancellable)

	// The failed second cancel emits no notification.
	assert.Equal(t, 2, f.unread(t))

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestCancelOrderWrongBuyer(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	err := f.svc.CancelOrder(f.seller.ID, orderID)
	require.ErrorIs(t, err, ErrOrderNotCancellable)

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestRequestReturnOnlyFromDelivered(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	err := f.svc.RequestReturn(f.buyer.ID, orderID)
	require.ErrorIs(t, err, ErrOrderNotReturnable)

	require.NoError(t, f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusProcessing))
	require.NoError(t, f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusShipped))
	require.NoError(t, f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusDelivered))

	require.NoError(t, f.svc.RequestReturn(f.buyer.ID, orderID))

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReturnRequested, order.Status)
}

func TestUpdateStatusAdvancesOneStep(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	// Skipping processing is rejected.
	err := f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusShipped)
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusProcessing))

	// Moving backwards is rejected too.
	err = f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusProcessing)
	require.ErrorIs(t, err, ErrInvalidTransition)

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	err := f.svc.UpdateStatus(f.seller.ID, orderID, "teleported")
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusPending)
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusCancelled)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusWrongSeller(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	intruder := &entity.User{
		ID: uuid.New(), Username: "intruder", Email: "intruder@example.com",
		PasswordHash: "x", UserType: entity.UserTypeSeller, CreatedAt: time.Now(),
	}
	require.NoError(t, repo.NewUserRepository(f.db).CreateUser(intruder))

	err := f.svc.UpdateStatus(intruder.ID, orderID, entity.OrderStatusProcessing)
	require.ErrorIs(t, err, ErrNotOrderSeller)

	order, err := f.svc.GetOrder(f.buyer.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestUpdateStatusNotifiesBuyer(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	require.NoError(t, f.svc.UpdateStatus(f.seller.ID, orderID, entity.OrderStatusProcessing))

	notifications, err := f.notiSvc.List(f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	var found bool
	for _, n := range notifications {
		if n.Type == entity.NotificationOrderStatus {
			found = true
			assert.Contains(t, n.Message, entity.OrderStatusProcessing)
		}
	}
	assert.True(t, found)
}

func TestGetOrderHidesOtherBuyers(t *testing.T) {
	f := newOrderFixture(t, 5)
	orderID := f.placeOrder(t, 1)

	_, err := f.svc.GetOrder(f.seller.ID, orderID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	_, err = f.svc.GetOrder(f.buyer.ID, uuid.New())
	require.ErrorIs(t, err, ErrOrderNotFound)
}
