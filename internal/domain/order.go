package domain

import (
	"errors" // Sentinel domain errors
	"time"   // Timestamps

	"github.com/shopspring/decimal" // Exact decimal type for money columns
)

// Domain errors for order lookups and creation
var (
	ErrOrderNotFound        = errors.New("order not found")             // No order row for the given id/number
	ErrDuplicateOrderNumber = errors.New("order number already exists") // Unique order_number column rejected the insert
)

// OrderStatus is the lifecycle label of an order, stored as a string column
type OrderStatus string

// Order statuses. Any status may be set from any other; there is no
// enforced transition graph.
const (
	StatusPending    OrderStatus = "PENDING"    // Initial status
	StatusConfirmed  OrderStatus = "CONFIRMED"  // Confirmed by the seller
	StatusProcessing OrderStatus = "PROCESSING" // Being prepared
	StatusShipped    OrderStatus = "SHIPPED"    // Handed to the carrier
	StatusDelivered  OrderStatus = "DELIVERED"  // Received by the customer
	StatusCancelled  OrderStatus = "CANCELLED"  // Cancelled
)

// Valid reports whether s is one of the known order statuses
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true // Known status
	}
	return false // Anything else is rejected at the HTTP boundary
}

// Order Model
type Order struct {
	ID          uint            `json:"id" gorm:"primaryKey"`                            // Primary key
	UserID      uint            `json:"userId" gorm:"index"`                             // Soft reference to User, no FK constraint
	OrderNumber string          `json:"orderNumber" gorm:"type:varchar(20);uniqueIndex"` // System-generated, ORD-XXXXXXXX
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20)"`                  // Stored as its string name
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2)"`           // Order total
	Description string          `json:"description"`                                     // Free-form description
	CreatedAt   time.Time       `json:"createdAt"`                                       // Set once at creation
	UpdatedAt   time.Time       `json:"updatedAt"`                                       // Restamped on every mutation
}

// Serialize totalAmount as a plain JSON number rather than a quoted string
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
