package models

import "time"

// TransactionStatus tracks one checkout attempt against the provider.
type TransactionStatus string

const (
	TxPending TransactionStatus = "pending"
	TxPaid    TransactionStatus = "paid"
	TxFailed  TransactionStatus = "failed"
	TxExpired TransactionStatus = "expired"
)

// PaymentTransaction records one checkout-session attempt. A fresh row is
// written per session, so retried checkouts leave multiple rows for the
// same order; reconciliation matches rows by session id, never by order id.
type PaymentTransaction struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	OrderID       string            `json:"order_id" gorm:"index;not null"`
	SessionID     string            `json:"session_id" gorm:"uniqueIndex;not null"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency" gorm:"default:'eur'"`
	PaymentMethod string            `json:"payment_method"`
	Status        TransactionStatus `json:"status" gorm:"not null;default:'pending'"`
	Metadata      map[string]string `json:"metadata" gorm:"serializer:json"`
	CreatedAt     time.Time         `json:"created_at"`
}
