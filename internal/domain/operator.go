package domain

import "errors" // Sentinel domain errors

// Domain errors for operator accounts
var (
	ErrOperatorNotFound = errors.New("operator not found")         // No operator row for the given id/username
	ErrUsernameTaken    = errors.New("username is already in use") // Unique username column rejected the insert
)

// Operator is a staff account for the admin endpoints. Kept separate from
// User so the public API entity carries no credentials.
type Operator struct {
	ID       uint   `json:"id" gorm:"primaryKey"`                          // Primary key
	Username string `json:"username" gorm:"type:varchar(50);uniqueIndex"`  // Unique username
	Password string `json:"-" gorm:"type:varchar(255)"`                    // Bcrypt hash, never serialized
	Role     string `json:"role" gorm:"type:varchar(20);default:operator"` // Role: operator or admin
}
