package repository

import (
	"context"

	"github.com/polkiloo/milktea/internal/domain/model"
)

// CatalogRepository provides read-only access to menu reference data.
type CatalogRepository interface {
	ListAvailableDrinks(ctx context.Context) ([]model.Drink, error)
	ListSizes(ctx context.Context) ([]model.Size, error)
	ListFlavors(ctx context.Context) ([]model.Flavor, error)
	ListToppings(ctx context.Context) ([]model.Topping, error)
	GetDrink(ctx context.Context, id int64) (*model.Drink, error)
	GetSize(ctx context.Context, id int64) (*model.Size, error)
	GetFlavor(ctx context.Context, id int64) (*model.Flavor, error)
	GetToppings(ctx context.Context, ids []int64) ([]model.Topping, error)
}
