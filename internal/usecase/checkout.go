package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/session"
)

// CheckoutUseCase drives a customer session from item selection to a placed order.
type CheckoutUseCase struct {
	catalog *CatalogUseCase
	orders  *OrderUseCase
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(catalog *CatalogUseCase, orders *OrderUseCase) *CheckoutUseCase {
	return &CheckoutUseCase{catalog: catalog, orders: orders}
}

// SelectItem resolves and prices the submitted item and captures it in the session.
// A new selection discards a previously chosen payment method.
func (u *CheckoutUseCase) SelectItem(ctx context.Context, sess *session.Session, in model.SelectionInput) (model.Quote, error) {
	line, err := u.catalog.Resolve(ctx, in)
	if err != nil {
		return model.Quote{}, err
	}
	quote, err := PriceLine(line)
	if err != nil {
		return model.Quote{}, err
	}
	sess.Selection = &model.Selection{Line: line}
	return quote, nil
}

// Current returns the captured selection with its price.
func (u *CheckoutUseCase) Current(sess *session.Session) (*model.Review, error) {
	if sess.Selection == nil {
		return nil, domainErrors.ErrMissingSelection
	}
	quote, err := PriceLine(sess.Selection.Line)
	if err != nil {
		return nil, err
	}
	return &model.Review{Selection: *sess.Selection, Quote: quote}, nil
}

// ChoosePaymentMethod records how the customer pays.
func (u *CheckoutUseCase) ChoosePaymentMethod(sess *session.Session, method string) error {
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

// Review returns the counter summary once both selection and payment method are present.
func (u *CheckoutUseCase) Review(sess *session.Session) (*model.Review, error) {
	review, err := u.Current(sess)
	if err != nil {
		return nil, err
	}
	if !review.Selection.HasPaymentMethod() {
		return nil, domainErrors.ErrMissingPaymentMethod
	}
	return review, nil
}

// PlaceOrder persists the captured selection and clears it from the session.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, sess *session.Session) (*model.Order, error) {
	review, err := u.Review(sess)
	if err != nil {
		return nil, err
	}
	order, err := u.orders.Place(ctx, review.Selection.Line, review.Selection.PaymentMethod)
	if err != nil {
		return nil, err
	}
	sess.Clear()
	return order, nil
}
