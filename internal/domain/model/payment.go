package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how the customer pays at the counter.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
)

// Valid reports whether method is accepted.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard:
		return true
	}
	return false
}

// PaymentStatus describes settlement state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment records settlement of an order.
type Payment struct {
	ID            int64
	OrderID       int64
	Method        PaymentMethod
	Amount        decimal.Decimal
	Status        PaymentStatus
	TransactionID string
	CreatedAt     time.Time
}

// TransactionIDFor derives the payment reference from an order number.
func TransactionIDFor(orderNumber string) string {
	return "TXN_" + orderNumber
}
