package service

import (
	"context"                          // Passed through to the repository
	"order_system/internal/domain"     // Importing domain models
	"order_system/internal/repository" // Repository contracts
	"time"                             // Timestamps

	"github.com/pkg/errors"      // Error wrapping for storage failures
	"github.com/sirupsen/logrus" // Logging library
)

// UserService owns timestamping, partial-update and not-found semantics for users
type UserService struct {
	repo repository.UserRepository // Persistence contract
}

// NewUserService builds a UserService over a repository
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser stamps timestamps and persists a new user
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	logrus.WithField("email", user.Email).Info("Creating new user")
	now := time.Now()
	user.ID = 0 // Storage assigns the id
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Create(ctx, user); err != nil {
		// Duplicate email is a caller error, everything else is storage failure
		if errors.Is(err, domain.ErrEmailTaken) {
			logrus.WithField("email", user.Email).Warn("Email already in use")
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"email": user.Email, "error": err.Error()}).Error("Error creating user")
		return nil, errors.Wrap(err, "failed to create user")
	}
	logrus.WithField("user_id", user.ID).Info("User created successfully")
	return user, nil
}

// GetUserByID returns the user for id, or ErrUserNotFound
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	logrus.WithField("user_id", id).Debug("Fetching user by id")
	return s.repo.FindByID(ctx, id)
}

// GetUserByEmail returns the user for email, or ErrUserNotFound
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	logrus.WithField("email", email).Debug("Fetching user by email")
	return s.repo.FindByEmail(ctx, email)
}

// GetAllUsers returns every user in storage order
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	logrus.Debug("Fetching all users")
	return s.repo.FindAll(ctx)
}

// UpdateUser overwrites name/email/phone and restamps updatedAt.
// All other fields are untouched; absent id yields ErrUserNotFound.
func (s *UserService) UpdateUser(ctx context.Context, id uint, details *domain.User) (*domain.User, error) {
	logrus.WithField("user_id", id).Info("Updating user")
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logrus.WithField("user_id", id).Warn("User not found for update")
		}
		return nil, err
	}

	user.Name = details.Name
	user.Email = details.Email
	user.Phone = details.Phone
	user.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to update user")
	}
	logrus.WithField("user_id", id).Info("User updated successfully")
	return user, nil
}

// DeleteUser removes the user for id, or returns ErrUserNotFound
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	logrus.WithField("user_id", id).Info("Deleting user")
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check user existence")
	}
	if !exists {
		logrus.WithField("user_id", id).Warn("User not found for deletion")
		return domain.ErrUserNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	logrus.WithField("user_id", id).Info("User deleted successfully")
	return nil
}
