package repository

import (
	"context"                      // Request-scoped cancellation for queries
	"errors"                       // Error inspection
	"order_system/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// OperatorRepository is the persistence contract for staff accounts
type OperatorRepository interface {
	Create(ctx context.Context, op *domain.Operator) error
	FindByID(ctx context.Context, id uint) (*domain.Operator, error)
	FindByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// GormOperatorRepository implements OperatorRepository on the operators table
type GormOperatorRepository struct {
	db *gorm.DB // Shared GORM handle, opened with TranslateError
}

// NewGormOperatorRepository wraps a GORM handle in an OperatorRepository
func NewGormOperatorRepository(db *gorm.DB) *GormOperatorRepository {
	return &GormOperatorRepository{db: db}
}

// Create inserts a new operator row
func (r *GormOperatorRepository) Create(ctx context.Context, op *domain.Operator) error {
	if err := r.db.WithContext(ctx).Create(op).Error; err != nil {
		// The username column is unique; translate the conflict
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByID looks an operator up by primary key
func (r *GormOperatorRepository) FindByID(ctx context.Context, id uint) (*domain.Operator, error) {
	var op domain.Operator
	if err := r.db.WithContext(ctx).First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, err
	}
	return &op, nil
}

// FindByUsername looks an operator up by the unique username column
func (r *GormOperatorRepository) FindByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	var op domain.Operator
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&op).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, err
	}
	return &op, nil
}
