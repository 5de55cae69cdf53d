package models

import "time"

// OrderStatus covers the full lifecycle of a pickup order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusPaid:      true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// ValidOrderStatus reports whether s is one of the six recognized statuses.
// Transitions are intentionally unconstrained: any status may follow any
// other, only membership is checked.
func ValidOrderStatus(s OrderStatus) bool {
	return orderStatuses[s]
}

// OrderStatuses returns the recognized statuses, for error messages.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending, StatusPaid, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled,
	}
}

type Order struct {
	ID               string      `json:"id" gorm:"primaryKey"`
	Items            []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CustomerName     string      `json:"customer_name" gorm:"not null"`
	CustomerEmail    string      `json:"customer_email" gorm:"not null"`
	CustomerPhone    string      `json:"customer_phone"`
	PickupTime       string      `json:"pickup_time"`
	Notes            string      `json:"notes"`
	Total            float64     `json:"total"`
	Status           OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod    string      `json:"payment_method"`
	PaymentSessionID string      `json:"payment_session_id" gorm:"index"`
	CreatedAt        time.Time   `json:"created_at"`
}

// OrderItem snapshots one cart line at order time. Name and price are copied
// from the caller's cart and never re-fetched, so historical orders are
// immune to later menu changes.
type OrderItem struct {
	ID          uint    `json:"-" gorm:"primaryKey"`
	OrderID     string  `json:"-" gorm:"index;not null"`
	ProductID   string  `json:"product_id" gorm:"not null"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price" gorm:"not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
}
