package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes preparation lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPlaced:    1,
	OrderStatusPreparing: 2,
	OrderStatusReady:     3,
	OrderStatusCompleted: 4,
}

// Valid reports whether status belongs to the lifecycle.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving to next is a strictly forward transition.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// UpdatableStatuses lists targets accepted by explicit status updates.
var UpdatableStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

// ParseUpdatableStatus converts raw input into a status accepted by explicit updates.
func ParseUpdatableStatus(raw string) (OrderStatus, bool) {
	for _, s := range UpdatableStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// Order describes a customer purchase and its preparation state.
type Order struct {
	ID          int64
	Number      string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem
	Payment     *Payment
}

// OrderItem is one customized drink within an order.
type OrderItem struct {
	ID        int64
	OrderID   int64
	Drink     Drink
	Size      Size
	Flavor    *Flavor
	Toppings  []Topping
	Quantity  int
	ItemPrice decimal.Decimal
}

// NewOrder carries everything required to persist a placed order atomically.
type NewOrder struct {
	Number      string
	TotalAmount decimal.Decimal
	Items       []OrderItem
	Payment     Payment
}
