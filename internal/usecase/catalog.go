package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
	"github.com/polkiloo/milktea/internal/domain/repository"
)

// CatalogUseCase exposes menu browsing and selection resolution.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// Menu returns available drinks together with all sizes, flavors and toppings.
func (u *CatalogUseCase) Menu(ctx context.Context) (*model.Menu, error) {
	drinks, err := u.catalog.ListAvailableDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	sizes, err := u.catalog.ListSizes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	flavors, err := u.catalog.ListFlavors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flavors: %w", err)
	}
	toppings, err := u.catalog.ListToppings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list toppings: %w", err)
	}
	return &model.Menu{Drinks: drinks, Sizes: sizes, Flavors: flavors, Toppings: toppings}, nil
}

// Resolve turns submitted identifiers into catalog entries. Duplicate topping ids collapse.
func (u *CatalogUseCase) Resolve(ctx context.Context, in model.SelectionInput) (model.Line, error) {
	if in.Quantity < 1 || in.Quantity > MaxQuantity {
		return model.Line{}, domainErrors.ErrInvalidQuantity
	}

	drink, err := u.catalog.GetDrink(ctx, in.DrinkID)
	if err != nil {
		return model.Line{}, fmt.Errorf("drink %d: %w", in.DrinkID, err)
	}
	if !drink.Available {
		return model.Line{}, domainErrors.ErrDrinkUnavailable
	}

	size, err := u.catalog.GetSize(ctx, in.SizeID)
	if err != nil {
		return model.Line{}, fmt.Errorf("size %d: %w", in.SizeID, err)
	}

	line := model.Line{Drink: *drink, Size: *size, Quantity: in.Quantity}

	if in.FlavorID != nil {
		flavor, err := u.catalog.GetFlavor(ctx, *in.FlavorID)
		if err != nil {
			return model.Line{}, fmt.Errorf("flavor %d: %w", *in.FlavorID, err)
		}
		line.Flavor = flavor
	}

	ids := uniqueIDs(in.ToppingIDs)
	if len(ids) > 0 {
		toppings, err := u.catalog.GetToppings(ctx, ids)
		if err != nil {
			return model.Line{}, fmt.Errorf("toppings: %w", err)
		}
		if len(toppings) != len(ids) {
			return model.Line{}, fmt.Errorf("toppings: %w", domainErrors.ErrNotFound)
		}
		line.Toppings = toppings
	}

	return line, nil
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
