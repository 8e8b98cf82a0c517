package app

import (
	"context"

	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/session"
	"github.com/polkiloo/milktea/internal/usecase"
)

// HealthChecker reports database readiness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade exposes use cases to the transport layer.
type ShopFacade struct {
	catalog  *usecase.CatalogUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	health   HealthChecker
}

func NewShopFacade(catalog *usecase.CatalogUseCase, checkout *usecase.CheckoutUseCase, orders *usecase.OrderUseCase, health HealthChecker) *ShopFacade {
	return &ShopFacade{catalog: catalog, checkout: checkout, orders: orders, health: health}
}

func (f *ShopFacade) Menu(ctx context.Context) (*model.Menu, error) {
	return f.catalog.Menu(ctx)
}

func (f *ShopFacade) SelectItem(ctx context.Context, sess *session.Session, in model.SelectionInput) (model.Quote, error) {
	return f.checkout.SelectItem(ctx, sess, in)
}

func (f *ShopFacade) CurrentSelection(sess *session.Session) (*model.Review, error) {
	return f.checkout.Current(sess)
}

func (f *ShopFacade) ChoosePaymentMethod(sess *session.Session, method string) error {
	return f.checkout.ChoosePaymentMethod(sess, method)
}

func (f *ShopFacade) Review(sess *session.Session) (*model.Review, error) {
	return f.checkout.Review(sess)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, sess *session.Session) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, sess)
}

func (f *ShopFacade) Order(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.Get(ctx, number)
}

func (f *ShopFacade) ReceiveOrder(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.Receive(ctx, number)
}

func (f *ShopFacade) MarkReceived(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.MarkReceived(ctx, number)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, number, status string) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, number, status)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
