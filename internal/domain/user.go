package domain

import (
	"errors" // Sentinel domain errors
	"time"   // Timestamps
)

// Domain errors for user lookups and creation
var (
	ErrUserNotFound = errors.New("user not found")          // No user row for the given id/email
	ErrEmailTaken   = errors.New("email is already in use") // Unique email column rejected the insert
)

// User Model
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`                       // Primary key
	Name      string    `json:"name"`                                       // Display name
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex"` // Unique email
	Phone     string    `json:"phone" gorm:"type:varchar(30)"`              // Contact phone
	CreatedAt time.Time `json:"createdAt"`                                  // Set once at creation
	UpdatedAt time.Time `json:"updatedAt"`                                  // Restamped on every mutation
}
