package repository

import (
	"context"                      // Request-scoped cancellation for queries
	"errors"                       // Error inspection
	"order_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// OrderFilter narrows admin listings. Zero values mean no filtering.
type OrderFilter struct {
	Status domain.OrderStatus // Match this status when non-empty
	UserID uint               // Match this user id when non-zero
}

// OrderRepository is the persistence contract consumed by OrderService
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error)
	FindPage(ctx context.Context, filter OrderFilter, offset, limit int) ([]domain.Order, error)
	CountAll(ctx context.Context, filter OrderFilter) (int64, error)
	Save(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// GormOrderRepository implements OrderRepository on the orders table
type GormOrderRepository struct {
	db *gorm.DB // Shared GORM handle, opened with TranslateError
}

// NewGormOrderRepository wraps a GORM handle in an OrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts a new order row
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		// The order_number column is unique; the service retries on this
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateOrderNumber
		}
		return err
	}
	return nil
}

// FindByID looks an order up by primary key
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByOrderNumber looks an order up by the unique order_number column
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll returns every order row in storage order
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByUserID returns all orders referencing the given user id
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindPage returns one page of orders for the admin listing
func (r *GormOrderRepository) FindPage(ctx context.Context, filter OrderFilter, offset, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	query := r.db.WithContext(ctx).Model(&domain.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if err := query.Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountAll returns the number of order rows matching the filter
func (r *GormOrderRepository) CountAll(ctx context.Context, filter OrderFilter) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&domain.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Save writes back a loaded, mutated order
func (r *GormOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// Delete removes an order row by primary key
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Order{}, id).Error
}

// ExistsByID reports whether an order row exists for id
func (r *GormOrderRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
