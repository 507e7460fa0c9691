package service_test

import (
	"context"
	"errors"
	"sort"

	"order_system/internal/domain"
	"order_system/internal/repository"
)

var errStorage = errors.New("storage offline")

// mockUserRepository is a map-backed stand-in for the users table
type mockUserRepository struct {
	store    map[uint]domain.User
	nextID   uint
	failNext bool // Next Create fails with a storage error
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	if m.failNext {
		m.failNext = false
		return errStorage
	}
	for _, u := range m.store {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.store[user.ID] = *user
	return nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if u, ok := m.store[id]; ok {
		u := u
		return &u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.store {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(m.store))
	for _, u := range m.store {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *mockUserRepository) FindPage(ctx context.Context, offset, limit int) ([]domain.User, error) {
	users, _ := m.FindAll(ctx)
	if offset >= len(users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (m *mockUserRepository) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.store)), nil
}

func (m *mockUserRepository) Save(_ context.Context, user *domain.User) error {
	for _, u := range m.store {
		if u.Email == user.Email && u.ID != user.ID {
			return domain.ErrEmailTaken
		}
	}
	m.store[user.ID] = *user
	return nil
}

func (m *mockUserRepository) Delete(_ context.Context, id uint) error {
	delete(m.store, id)
	return nil
}

func (m *mockUserRepository) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := m.store[id]
	return ok, nil
}

// mockOrderRepository is a map-backed stand-in for the orders table
type mockOrderRepository struct {
	store      map[uint]domain.Order
	nextID     uint
	dupCreates int  // Number of upcoming Creates to reject as number collisions
	failNext   bool // Next Create fails with a storage error
}

func (m *mockOrderRepository) Create(_ context.Context, order *domain.Order) error {
	if m.failNext {
		m.failNext = false
		return errStorage
	}
	if m.dupCreates > 0 {
		m.dupCreates--
		return domain.ErrDuplicateOrderNumber
	}
	for _, o := range m.store {
		if o.OrderNumber == order.OrderNumber {
			return domain.ErrDuplicateOrderNumber
		}
	}
	m.nextID++
	order.ID = m.nextID
	m.store[order.ID] = *order
	return nil
}

func (m *mockOrderRepository) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	if o, ok := m.store[id]; ok {
		o := o
		return &o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepository) FindByOrderNumber(_ context.Context, orderNumber string) (*domain.Order, error) {
	for _, o := range m.store {
		if o.OrderNumber == orderNumber {
			o := o
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepository) FindAll(_ context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(m.store))
	for _, o := range m.store {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *mockOrderRepository) FindByUserID(_ context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	for _, o := range m.store {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *mockOrderRepository) filtered(ctx context.Context, filter repository.OrderFilter) []domain.Order {
	all, _ := m.FindAll(ctx)
	var orders []domain.Order
	for _, o := range all {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.UserID != 0 && o.UserID != filter.UserID {
			continue
		}
		orders = append(orders, o)
	}
	return orders
}

func (m *mockOrderRepository) FindPage(ctx context.Context, filter repository.OrderFilter, offset, limit int) ([]domain.Order, error) {
	orders := m.filtered(ctx, filter)
	if offset >= len(orders) {
		return nil, nil
	}
	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end], nil
}

func (m *mockOrderRepository) CountAll(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	return int64(len(m.filtered(ctx, filter))), nil
}

func (m *mockOrderRepository) Save(_ context.Context, order *domain.Order) error {
	m.store[order.ID] = *order
	return nil
}

func (m *mockOrderRepository) Delete(_ context.Context, id uint) error {
	delete(m.store, id)
	return nil
}

func (m *mockOrderRepository) ExistsByID(_ context.Context, id uint) (bool, error) {
	_, ok := m.store[id]
	return ok, nil
}
