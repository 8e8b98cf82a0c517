package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/domain/repository"
	"github.com/polkiloo/milktea/internal/pkg/ordernumber"
)

const (
	// DefaultNumberAttempts bounds order number allocation retries.
	DefaultNumberAttempts = 32
	maxTransitionAttempts = 5
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	numbers  ordernumber.Generator
	attempts int
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, numbers ordernumber.Generator, attempts int) *OrderUseCase {
	if attempts <= 0 {
		attempts = DefaultNumberAttempts
	}
	return &OrderUseCase{orders: orders, numbers: numbers, attempts: attempts}
}

// Place prices the captured line and persists a placed order with a settled payment.
func (u *OrderUseCase) Place(ctx context.Context, line model.Line, method model.PaymentMethod) (*model.Order, error) {
	if !method.Valid() {
		return nil, domainErrors.ErrInvalidPaymentMethod
	}

	quote, err := PriceLine(line)
	if err != nil {
		return nil, err
	}
	itemPrice := RoundCurrency(quote.Total)

	item := model.OrderItem{
		Drink:     line.Drink,
		Size:      line.Size,
		Flavor:    line.Flavor,
		Toppings:  line.Toppings,
		Quantity:  line.Quantity,
		ItemPrice: itemPrice,
	}

	for i := 0; i < u.attempts; i++ {
		number, err := u.numbers.Next()
		if err != nil {
			return nil, err
		}

		exists, err := u.orders.NumberExists(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("check order number: %w", err)
		}
		if exists {
			continue
		}

		order, err := u.orders.Create(ctx, model.NewOrder{
			Number:      number,
			TotalAmount: itemPrice,
			Items:       []model.OrderItem{item},
			Payment: model.Payment{
				Method:        method,
				Amount:        itemPrice,
				Status:        model.PaymentStatusCompleted,
				TransactionID: model.TransactionIDFor(number),
			},
		})
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		return order, nil
	}

	return nil, domainErrors.ErrOrderNumberExhausted
}

// Get returns order by its public number.
func (u *OrderUseCase) Get(ctx context.Context, number string) (*model.Order, error) {
	if !ordernumber.Valid(number) {
		return nil, domainErrors.ErrNotFound
	}
	return u.orders.GetByNumber(ctx, number)
}

// Receive marks a placed order as ready when the customer comes to pick it up.
// Orders in any other state are returned unchanged.
func (u *OrderUseCase) Receive(ctx context.Context, number string) (*model.Order, error) {
	order, err := u.Get(ctx, number)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderStatusPlaced {
		return order, nil
	}

	applied, err := u.orders.TransitionStatus(ctx, number, model.OrderStatusPlaced, model.OrderStatusReady)
	if err != nil {
		return nil, fmt.Errorf("transition order %s: %w", number, err)
	}
	if applied {
		order.Status = model.OrderStatusReady
		return order, nil
	}
	return u.Get(ctx, number)
}

// MarkReceived completes the order.
func (u *OrderUseCase) MarkReceived(ctx context.Context, number string) (*model.Order, error) {
	return u.advance(ctx, number, model.OrderStatusCompleted)
}

// UpdateStatus moves the order to an explicitly requested status.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, number, status string) (*model.Order, error) {
	target, ok := model.ParseUpdatableStatus(status)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.advance(ctx, number, target)
}

// advance applies a forward transition conditioned on the status read, re-reading after a lost race.
func (u *OrderUseCase) advance(ctx context.Context, number string, target model.OrderStatus) (*model.Order, error) {
	for i := 0; i < maxTransitionAttempts; i++ {
		order, err := u.Get(ctx, number)
		if err != nil {
			return nil, err
		}
		if order.Status == target {
			return order, nil
		}
		if !order.Status.CanAdvanceTo(target) {
			return nil, fmt.Errorf("%s -> %s: %w", order.Status, target, domainErrors.ErrInvalidTransition)
		}

		applied, err := u.orders.TransitionStatus(ctx, number, order.Status, target)
		if err != nil {
			return nil, fmt.Errorf("transition order %s: %w", number, err)
		}
		if applied {
			order.Status = target
			return order, nil
		}
	}
	return nil, domainErrors.ErrStatusConflict
}
