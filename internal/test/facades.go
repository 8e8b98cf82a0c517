package test

import (
	"context"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/session"
)

// ShopFacadeStub provides controllable behaviour for HTTP handlers.
// Defaults follow the checkout rules closely enough to drive a whole flow.
type ShopFacadeStub struct {
	MenuResult *model.Menu
	Quote      model.Quote
	Number     string
	HealthErr  error

	MenuFn         func(context.Context) (*model.Menu, error)
	SelectFn       func(context.Context, *session.Session, model.SelectionInput) (model.Quote, error)
	PlaceFn        func(context.Context, *session.Session) (*model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	ReceiveFn      func(context.Context, string) (*model.Order, error)
	MarkReceivedFn func(context.Context, string) (*model.Order, error)
	UpdateFn       func(context.Context, string, string) (*model.Order, error)
}

// Menu returns configured catalog.
func (s ShopFacadeStub) Menu(ctx context.Context) (*model.Menu, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx)
	}
	if s.MenuResult != nil {
		return s.MenuResult, nil
	}
	return &model.Menu{}, nil
}

// SelectItem captures a line built from raw identifiers.
func (s ShopFacadeStub) SelectItem(ctx context.Context, sess *session.Session, in model.SelectionInput) (model.Quote, error) {
	if s.SelectFn != nil {
		return s.SelectFn(ctx, sess, in)
	}
	if in.Quantity < 1 {
		return model.Quote{}, domainErrors.ErrInvalidQuantity
	}
	sess.Selection = &model.Selection{Line: model.Line{
		Drink:    model.Drink{ID: in.DrinkID},
		Size:     model.Size{ID: in.SizeID},
		Quantity: in.Quantity,
	}}
	return s.Quote, nil
}

// CurrentSelection returns the captured selection with configured quote.
func (s ShopFacadeStub) CurrentSelection(sess *session.Session) (*model.Review, error) {
	if sess.Selection == nil {
		return nil, domainErrors.ErrMissingSelection
	}
	return &model.Review{Selection: *sess.Selection, Quote: s.Quote}, nil
}

// ChoosePaymentMethod records valid methods on the session.
func (s ShopFacadeStub) ChoosePaymentMethod(sess *session.Session, method string) error {
	if sess.Selection == nil {
		return domainErrors.ErrMissingSelection
	}
	m := model.PaymentMethod(method)
	if !m.Valid() {
		return domainErrors.ErrInvalidPaymentMethod
	}
	sess.Selection.PaymentMethod = m
	return nil
}

// Review requires selection and payment method.
func (s ShopFacadeStub) Review(sess *session.Session) (*model.Review, error) {
	review, err := s.CurrentSelection(sess)
	if err != nil {
		return nil, err
	}
	if !review.Selection.HasPaymentMethod() {
		return nil, domainErrors.ErrMissingPaymentMethod
	}
	return review, nil
}

// PlaceOrder returns a placed order for the reviewed selection.
func (s ShopFacadeStub) PlaceOrder(ctx context.Context, sess *session.Session) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, sess)
	}
	review, err := s.Review(sess)
	if err != nil {
		return nil, err
	}
	number := s.Number
	if number == "" {
		number = "123456"
	}
	total := review.Quote.Total.Round(2)
	sess.Clear()
	return &model.Order{
		Number:      number,
		Status:      model.OrderStatusPlaced,
		TotalAmount: total,
		Payment: &model.Payment{
			Method:        review.Selection.PaymentMethod,
			Amount:        total,
			Status:        model.PaymentStatusCompleted,
			TransactionID: model.TransactionIDFor(number),
		},
	}, nil
}

// Order returns a placed order by default.
func (s ShopFacadeStub) Order(ctx context.Context, number string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, number)
	}
	return &model.Order{Number: number, Status: model.OrderStatusPlaced}, nil
}

// ReceiveOrder returns a ready order by default.
func (s ShopFacadeStub) ReceiveOrder(ctx context.Context, number string) (*model.Order, error) {
	if s.ReceiveFn != nil {
		return s.ReceiveFn(ctx, number)
	}
	return &model.Order{Number: number, Status: model.OrderStatusReady}, nil
}

// MarkReceived returns a completed order by default.
func (s ShopFacadeStub) MarkReceived(ctx context.Context, number string) (*model.Order, error) {
	if s.MarkReceivedFn != nil {
		return s.MarkReceivedFn(ctx, number)
	}
	return &model.Order{Number: number, Status: model.OrderStatusCompleted}, nil
}

// UpdateOrderStatus accepts updatable statuses only.
func (s ShopFacadeStub) UpdateOrderStatus(ctx context.Context, number, status string) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, number, status)
	}
	target, ok := model.ParseUpdatableStatus(status)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return &model.Order{Number: number, Status: target}, nil
}

// HealthCheck returns configured error.
func (s ShopFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// SweeperStub counts sweeps for worker tests.
type SweeperStub struct {
	Removed int
	calls   chan struct{}
}

// NewSweeperStub creates stub reporting removed sessions per sweep.
func NewSweeperStub(removed int) *SweeperStub {
	return &SweeperStub{Removed: removed, calls: make(chan struct{}, 16)}
}

// Sweep records invocation.
func (s *SweeperStub) Sweep(context.Context) int {
	select {
	case s.calls <- struct{}{}:
	default:
	}
	return s.Removed
}

// Calls exposes sweep notifications.
func (s *SweeperStub) Calls() <-chan struct{} {
	return s.calls
}

// HealthCheckerStub returns configured error from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck reports configured readiness.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
