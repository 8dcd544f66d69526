package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	"local-market/internal/repository/mongodb"
	repo "local-market/internal/repository/sqlite"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInsufficientStock   = errors.New("insufficient stock for one or more items")
	ErrOrderNotCancellable = errors.New("order not found or cannot be cancelled")
	ErrOrderNotReturnable  = errors.New("order not found or cannot be returned")
	ErrNotOrderSeller      = errors.New("you do not have permission to update this order")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// statusRank orders the forward fulfilment states. Sellers must advance
// one step at a time; regressions and skips are rejected.
var statusRank = map[string]int{
	entity.OrderStatusPending:    0,
	entity.OrderStatusProcessing: 1,
	entity.OrderStatusShipped:    2,
	entity.OrderStatusDelivered:  3,
}

type OrderService struct {
	orderRepo        repo.OrderRepository
	notificationRepo repo.NotificationRepository
	historyRepo      mongodb.HistoryRepository
}

// NewOrderService wires the order component. historyRepo may be nil when
// the status history trail is not configured.
func NewOrderService(orderRepo repo.OrderRepository, notificationRepo repo.NotificationRepository, historyRepo mongodb.HistoryRepository) *OrderService {
	return &OrderService{
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		historyRepo:      historyRepo,
	}
}

// createAndSaveNotification is the best-effort second phase after a
// committed order mutation: failures are logged, never propagated.
func (s *OrderService) createAndSaveNotification(userID uuid.UUID, notiType, message string) {
	n := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      notiType,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.Create(n); err != nil {
		slog.Warn("failed to save notification", "user_id", userID, "type", notiType, "err", err)
	}
}

func (s *OrderService) saveStatusHistory(orderID uuid.UUID, oldStatus, newStatus string, changedBy uuid.UUID) {
	if s.historyRepo == nil {
		return
	}
	doc := &entity.StatusHistory{
		OrderID:   orderID.String(),
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy.String(),
		Timestamp: time.Now(),
	}
	if err := s.historyRepo.SaveStatusHistory(doc); err != nil {
		slog.Warn("failed to save status history", "order_id", orderID, "err", err)
	}
}

// CreateOrder places a checkout as one all-or-nothing unit: order row,
// item snapshots and stock decrements commit together or not at all.
// TotalAmount is stored as the client sent it, not recomputed from the
// line items (known integrity gap, kept deliberately).
func (s *OrderService) CreateOrder(buyerID uuid.UUID, input entity.CreateOrderInput) (uuid.UUID, error) {
	order := &entity.Order{
		ID:          uuid.New(),
		BuyerID:     buyerID,
		TotalAmount: input.TotalAmount,
		Status:      entity.OrderStatusPending,
		FullName:    input.ShippingAddress.FullName,
		Address:     input.ShippingAddress.Address,
		City:        input.ShippingAddress.City,
		ZipCode:     input.ShippingAddress.ZipCode,
		Country:     input.ShippingAddress.Country,
		CreatedAt:   time.Now(),
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
		})
	}

	if err := s.orderRepo.CreateOrderTransaction(order, items); err != nil {
		if errors.Is(err, repo.ErrInsufficientStock) {
			return uuid.Nil, ErrInsufficientStock
		}
		return uuid.Nil, err
	}

	s.createAndSaveNotification(buyerID, entity.NotificationOrderCreated,
		fmt.Sprintf("Your order #%s has been placed successfully.", shortID(order.ID)))

	return order.ID, nil
}

func (s *OrderService) ListOrders(buyerID uuid.UUID) ([]entity.OrderWithItems, error) {
	orders, err := s.orderRepo.GetByBuyerID(buyerID)
	if err != nil {
		return nil, err
	}

	result := make([]entity.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := s.orderRepo.GetItemsDetailed(order.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.OrderWithItems{Order: order, Items: items})
	}
	return result, nil
}

// GetOrder returns the buyer's own order with joined item detail.
// Orders belonging to someone else are indistinguishable from missing.
func (s *OrderService) GetOrder(buyerID, orderID uuid.UUID) (*entity.OrderWithItems, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.BuyerID != buyerID {
		return nil, ErrOrderNotFound
	}

	items, err := s.orderRepo.GetItemsDetailed(orderID)
	if err != nil {
		return nil, err
	}
	return &entity.OrderWithItems{Order: *order, Items: items}, nil
}

// CancelOrder is a guarded buyer transition: only the order's own buyer,
// only from pending. A failed guard changes nothing and emits nothing.
func (s *OrderService) CancelOrder(buyerID, orderID uuid.UUID) error {
	ok, err := s.orderRepo.UpdateStatusIf(orderID, buyerID, entity.OrderStatusPending, entity.OrderStatusCancelled)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotCancellable
	}

	s.saveStatusHistory(orderID, entity.OrderStatusPending, entity.OrderStatusCancelled, buyerID)
	s.createAndSaveNotification(buyerID, entity.NotificationOrderCancelled,
		fmt.Sprintf("Your order #%s has been cancelled.", shortID(orderID)))
	return nil
}

// RequestReturn is permitted only from delivered, only by the buyer.
func (s *OrderService) RequestReturn(buyerID, orderID uuid.UUID) error {
	ok, err := s.orderRepo.UpdateStatusIf(orderID, buyerID, entity.OrderStatusDelivered, entity.OrderStatusReturnRequested)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotReturnable
	}

	s.saveStatusHistory(orderID, entity.OrderStatusDelivered, entity.OrderStatusReturnRequested, buyerID)
	s.createAndSaveNotification(buyerID, entity.NotificationReturnRequested,
		fmt.Sprintf("A return has been requested for your order #%s.", shortID(orderID)))
	return nil
}

func (s *OrderService) ListSellerOrders(sellerID uuid.UUID) ([]entity.OrderWithItems, error) {
	orders, err := s.orderRepo.GetBySellerID(sellerID)
	if err != nil {
		return nil, err
	}

	result := make([]entity.OrderWithItems, 0, len(orders))
	for _, order := range orders {
		items, err := s.orderRepo.GetItemsDetailed(order.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, entity.OrderWithItems{Order: order, Items: items})
	}
	return result, nil
}

// UpdateStatus moves an order forward on behalf of a seller who owns at
// least one product in it. Transitions must advance exactly one step
// along pending -> processing -> shipped -> delivered.
func (s *OrderService) UpdateStatus(sellerID, orderID uuid.UUID, status string) error {
	newRank, ok := statusRank[status]
	if !ok || status == entity.OrderStatusPending {
		return ErrInvalidStatus
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	owns, err := s.orderRepo.SellerHasProductInOrder(orderID, sellerID)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotOrderSeller
	}

	curRank, ok := statusRank[order.Status]
	if !ok || newRank != curRank+1 {
		return ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return err
	}

	s.saveStatusHistory(orderID, order.Status, status, sellerID)
	s.createAndSaveNotification(order.BuyerID, entity.NotificationOrderStatus,
		fmt.Sprintf("Your order #%s status has been updated to %s.", shortID(orderID), status))
	return nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
