package app

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/session"
	testhelpers "github.com/polkiloo/milktea/internal/test"
	"github.com/polkiloo/milktea/internal/usecase"
)

func newFacade(health error, numbers ...string) (*ShopFacade, *testhelpers.OrderRepositoryStub) {
	catalogUC := usecase.NewCatalogUseCase(testhelpers.NewCatalogRepositoryStub())
	orders := testhelpers.NewOrderRepositoryStub()
	orderUC := usecase.NewOrderUseCase(orders, &testhelpers.SequenceGenerator{Numbers: numbers}, 0)
	checkoutUC := usecase.NewCheckoutUseCase(catalogUC, orderUC)
	return NewShopFacade(catalogUC, checkoutUC, orderUC, testhelpers.HealthCheckerStub{Err: health}), orders
}

func TestShopFacadeMenu(t *testing.T) {
	facade, _ := newFacade(nil)
	menu, err := facade.Menu(context.Background())
	if err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	for _, d := range menu.Drinks {
		if !d.Available {
			t.Fatalf("unavailable drink listed: %+v", d)
		}
	}
	if len(menu.Sizes) == 0 || len(menu.Flavors) == 0 || len(menu.Toppings) == 0 {
		t.Fatalf("expected full catalog, got %+v", menu)
	}
}

func TestShopFacadeCheckoutFlow(t *testing.T) {
	facade, orders := newFacade(nil, "424242")
	sess := session.New(time.Now(), time.Minute)
	ctx := context.Background()

	if _, err := facade.CurrentSelection(sess); !errors.Is(err, domainErrors.ErrMissingSelection) {
		t.Fatalf("expected missing selection, got %v", err)
	}

	flavor := int64(2)
	quote, err := facade.SelectItem(ctx, sess, model.SelectionInput{DrinkID: 1, SizeID: 3, FlavorID: &flavor, ToppingIDs: []int64{1}, Quantity: 2})
	if err != nil {
		t.Fatalf("select item: %v", err)
	}
	if quote.Total.StringFixed(2) != "13.75" {
		t.Fatalf("expected 13.75, got %s", quote.Total)
	}

	review, err := facade.CurrentSelection(sess)
	if err != nil || !review.Quote.Total.Equal(quote.Total) {
		t.Fatalf("unexpected current selection %+v err=%v", review, err)
	}
	if _, err := facade.Review(sess); !errors.Is(err, domainErrors.ErrMissingPaymentMethod) {
		t.Fatalf("expected missing payment method, got %v", err)
	}
	if err := facade.ChoosePaymentMethod(sess, "credit_card"); err != nil {
		t.Fatalf("choose payment method: %v", err)
	}

	order, err := facade.PlaceOrder(ctx, sess)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Number != "424242" || order.TotalAmount.StringFixed(2) != "13.75" || orders.Len() != 1 {
		t.Fatalf("unexpected order %+v", order)
	}
	if sess.Selection != nil {
		t.Fatal("expected session selection cleared")
	}
}

func TestShopFacadeOrderLifecycle(t *testing.T) {
	facade, orders := newFacade(nil)
	orders.Put(model.Order{Number: "111111", Status: model.OrderStatusPlaced})
	ctx := context.Background()

	order, err := facade.Order(ctx, "111111")
	if err != nil || order.Status != model.OrderStatusPlaced {
		t.Fatalf("unexpected order %+v err=%v", order, err)
	}
	if order, err = facade.ReceiveOrder(ctx, "111111"); err != nil || order.Status != model.OrderStatusReady {
		t.Fatalf("expected ready after receive, got %+v err=%v", order, err)
	}
	if _, err = facade.UpdateOrderStatus(ctx, "111111", "placed"); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
	if _, err = facade.UpdateOrderStatus(ctx, "111111", "cancelled"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if order, err = facade.MarkReceived(ctx, "111111"); err != nil || order.Status != model.OrderStatusCompleted {
		t.Fatalf("expected completed, got %+v err=%v", order, err)
	}
	if _, err = facade.Order(ctx, "999999"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShopFacadeHealthCheck(t *testing.T) {
	facade, _ := newFacade(nil)
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	down := errors.New("down")
	facade, _ = newFacade(down)
	if err := facade.HealthCheck(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected health error, got %v", err)
	}
}
