package repository

import (
	"context"

	"github.com/polkiloo/milktea/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores the order with its items and payment and advances it to placed in one
	// transaction. Returns ErrAlreadyExists when the order number is taken.
	Create(ctx context.Context, order model.NewOrder) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	// TransitionStatus moves the order from one status to another only if it still holds from.
	TransitionStatus(ctx context.Context, number string, from, to model.OrderStatus) (bool, error)
}
