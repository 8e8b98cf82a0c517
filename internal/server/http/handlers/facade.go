package handlers

import (
	"context"

	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/session"
)

// MenuFacade exposes the catalog shown to customers.
type MenuFacade interface {
	Menu(ctx context.Context) (*model.Menu, error)
}

// CheckoutFacade drives a session from selection to placement.
type CheckoutFacade interface {
	SelectItem(ctx context.Context, sess *session.Session, in model.SelectionInput) (model.Quote, error)
	CurrentSelection(sess *session.Session) (*model.Review, error)
	ChoosePaymentMethod(sess *session.Session, method string) error
	Review(sess *session.Session) (*model.Review, error)
	PlaceOrder(ctx context.Context, sess *session.Session) (*model.Order, error)
}

// OrderFacade encapsulates order tracking exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, number string) (*model.Order, error)
	ReceiveOrder(ctx context.Context, number string) (*model.Order, error)
	MarkReceived(ctx context.Context, number string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, number, status string) (*model.Order, error)
}

// HealthFacade reports backing store readiness.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	MenuFacade
	CheckoutFacade
	OrderFacade
	HealthFacade
}

// OrderingFacade covers the browse and checkout steps of the flow.
type OrderingFacade interface {
	MenuFacade
	CheckoutFacade
}
