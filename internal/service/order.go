package service

import (
	"context"                          // Passed through to the repository
	"order_system/internal/domain"     // Importing domain models
	"order_system/internal/repository" // Repository contracts
	"strings"                          // Order-number formatting
	"time"                             // Timestamps

	"github.com/google/uuid"     // Entropy source for order numbers
	"github.com/pkg/errors"      // Error wrapping for storage failures
	"github.com/sirupsen/logrus" // Logging library
)

// Attempts at inserting a freshly generated order number before giving up
const maxOrderNumberAttempts = 3

// OrderService owns order-number generation, timestamping and update semantics
type OrderService struct {
	repo repository.OrderRepository // Persistence contract
}

// NewOrderService builds an OrderService over a repository
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// generateOrderNumber returns ORD- followed by 8 uppercase hex digits
func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateOrder assigns a fresh order number, stamps timestamps and persists.
// A client-supplied order number is ignored. The unique order_number column
// backs a short retry loop against generator collisions.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	logrus.WithField("user_id", order.UserID).Info("Creating new order")
	now := time.Now()
	order.ID = 0 // Storage assigns the id
	order.CreatedAt = now
	order.UpdatedAt = now

	var err error
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		order.OrderNumber = generateOrderNumber()
		err = s.repo.Create(ctx, order)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"order_id":     order.ID,
				"order_number": order.OrderNumber,
			}).Info("Order created successfully")
			return order, nil
		}
		if !errors.Is(err, domain.ErrDuplicateOrderNumber) {
			break // Storage failure, retrying will not help
		}
		logrus.WithFields(logrus.Fields{
			"order_number": order.OrderNumber,
			"attempt":      attempt,
		}).Warn("Order number collision, regenerating")
	}
	logrus.WithFields(logrus.Fields{"user_id": order.UserID, "error": err.Error()}).Error("Error creating order")
	return nil, errors.Wrap(err, "failed to create order")
}

// GetOrderByID returns the order for id, or ErrOrderNotFound
func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (*domain.Order, error) {
	logrus.WithField("order_id", id).Debug("Fetching order by id")
	return s.repo.FindByID(ctx, id)
}

// GetOrderByOrderNumber returns the order for orderNumber, or ErrOrderNotFound
func (s *OrderService) GetOrderByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	logrus.WithField("order_number", orderNumber).Debug("Fetching order by order number")
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

// GetAllOrders returns every order in storage order
func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	logrus.Debug("Fetching all orders")
	return s.repo.FindAll(ctx)
}

// GetOrdersByUserID returns all orders referencing userID
func (s *OrderService) GetOrdersByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	logrus.WithField("user_id", userID).Debug("Fetching orders by user id")
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": userID, "count": len(orders)}).Debug("Orders fetched for user")
	return orders, nil
}

// UpdateOrderStatus overwrites status and restamps updatedAt. Any status may
// replace any other; only enum membership is checked, at the HTTP boundary.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint, newStatus domain.OrderStatus) (*domain.Order, error) {
	logrus.WithFields(logrus.Fields{"order_id": id, "status": newStatus}).Info("Updating order status")
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			logrus.WithField("order_id", id).Warn("Order not found for status update")
		}
		return nil, err
	}

	oldStatus := order.Status
	order.Status = newStatus
	order.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	logrus.WithFields(logrus.Fields{
		"order_id":   id,
		"old_status": oldStatus,
		"new_status": newStatus,
	}).Info("Order status updated successfully")
	return order, nil
}

// UpdateOrder overwrites description/totalAmount and restamps updatedAt.
// Status and userId are untouched; absent id yields ErrOrderNotFound.
func (s *OrderService) UpdateOrder(ctx context.Context, id uint, details *domain.Order) (*domain.Order, error) {
	logrus.WithField("order_id", id).Info("Updating order")
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			logrus.WithField("order_id", id).Warn("Order not found for update")
		}
		return nil, err
	}

	order.Description = details.Description
	order.TotalAmount = details.TotalAmount
	order.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}
	logrus.WithField("order_id", id).Info("Order updated successfully")
	return order, nil
}

// DeleteOrder removes the order for id, or returns ErrOrderNotFound
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	logrus.WithField("order_id", id).Info("Deleting order")
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if !exists {
		logrus.WithField("order_id", id).Warn("Order not found for deletion")
		return domain.ErrOrderNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}
	logrus.WithField("order_id", id).Info("Order deleted successfully")
	return nil
}
