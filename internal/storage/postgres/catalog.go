package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/milktea/internal/domain/model"
)

const (
	drinkColumns   = `id, name, description, base_price, is_available`
	sizeColumns    = `id, name, price_multiplier`
	flavorColumns  = `id, name, additional_price`
	toppingColumns = `id, name, price`
)

func scanDrink(row pgx.CollectableRow) (model.Drink, error) {
	var d model.Drink
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.BasePrice, &d.Available)
	return d, err
}

func scanSize(row pgx.CollectableRow) (model.Size, error) {
	var s model.Size
	err := row.Scan(&s.ID, &s.Name, &s.PriceMultiplier)
	return s, err
}

func scanFlavor(row pgx.CollectableRow) (model.Flavor, error) {
	var f model.Flavor
	err := row.Scan(&f.ID, &f.Name, &f.AdditionalPrice)
	return f, err
}

func scanTopping(row pgx.CollectableRow) (model.Topping, error) {
	var t model.Topping
	err := row.Scan(&t.ID, &t.Name, &t.Price)
	return t, err
}

func queryAll[T any](ctx context.Context, pool pgxPool, fn pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, fn)
}

func (r *catalogRepository) ListAvailableDrinks(ctx context.Context) ([]model.Drink, error) {
	const query = `SELECT ` + drinkColumns + ` FROM drinks WHERE is_available ORDER BY id`
	return queryAll(ctx, r.storage.pool, scanDrink, query)
}

func (r *catalogRepository) ListSizes(ctx context.Context) ([]model.Size, error) {
	const query = `SELECT ` + sizeColumns + ` FROM sizes ORDER BY price_multiplier, id`
	return queryAll(ctx, r.storage.pool, scanSize, query)
}

func (r *catalogRepository) ListFlavors(ctx context.Context) ([]model.Flavor, error) {
	const query = `SELECT ` + flavorColumns + ` FROM flavors ORDER BY id`
	return queryAll(ctx, r.storage.pool, scanFlavor, query)
}

func (r *catalogRepository) ListToppings(ctx context.Context) ([]model.Topping, error) {
	const query = `SELECT ` + toppingColumns + ` FROM toppings ORDER BY id`
	return queryAll(ctx, r.storage.pool, scanTopping, query)
}

func (r *catalogRepository) GetDrink(ctx context.Context, id int64) (*model.Drink, error) {
	const query = `SELECT ` + drinkColumns + ` FROM drinks WHERE id=$1`
	var d model.Drink
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description, &d.BasePrice, &d.Available)
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *catalogRepository) GetSize(ctx context.Context, id int64) (*model.Size, error) {
	const query = `SELECT ` + sizeColumns + ` FROM sizes WHERE id=$1`
	var s model.Size
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.PriceMultiplier)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *catalogRepository) GetFlavor(ctx context.Context, id int64) (*model.Flavor, error) {
	const query = `SELECT ` + flavorColumns + ` FROM flavors WHERE id=$1`
	var f model.Flavor
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.AdditionalPrice)
	if err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

// GetToppings returns the toppings among ids that exist; callers compare lengths to detect unknown ids.
func (r *catalogRepository) GetToppings(ctx context.Context, ids []int64) ([]model.Topping, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `SELECT ` + toppingColumns + ` FROM toppings WHERE id = ANY($1) ORDER BY id`
	return queryAll(ctx, r.storage.pool, scanTopping, query, ids)
}
