package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/milktea/internal/config"
	"github.com/polkiloo/milktea/internal/domain/repository"
	"github.com/polkiloo/milktea/internal/pkg/ordernumber"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewCatalogUseCase,
	newOrderUseCase,
	NewCheckoutUseCase,
)

type orderParams struct {
	fx.In

	Orders  repository.OrderRepository
	Numbers ordernumber.Generator
	Config  *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Numbers, p.Config.OrderNumberAttempts)
}
