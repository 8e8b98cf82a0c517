package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/milktea/internal/domain/model"
)

var (
	seedSizes = []model.Size{
		{Name: "Small (12oz)", PriceMultiplier: decimal.RequireFromString("0.85")},
		{Name: "Medium (16oz)", PriceMultiplier: decimal.RequireFromString("1.00")},
		{Name: "Large (20oz)", PriceMultiplier: decimal.RequireFromString("1.25")},
	}

	seedFlavors = []model.Flavor{
		{Name: "Original", AdditionalPrice: decimal.RequireFromString("0.00")},
		{Name: "Taro", AdditionalPrice: decimal.RequireFromString("0.50")},
		{Name: "Matcha", AdditionalPrice: decimal.RequireFromString("0.60")},
		{Name: "Chocolate", AdditionalPrice: decimal.RequireFromString("0.50")},
		{Name: "Strawberry", AdditionalPrice: decimal.RequireFromString("0.50")},
		{Name: "Mango", AdditionalPrice: decimal.RequireFromString("0.60")},
		{Name: "Honeydew", AdditionalPrice: decimal.RequireFromString("0.50")},
		{Name: "Lavender", AdditionalPrice: decimal.RequireFromString("0.70")},
	}

	seedToppings = []model.Topping{
		{Name: "Tapioca Pearls", Price: decimal.RequireFromString("0.75")},
		{Name: "Crystal Boba", Price: decimal.RequireFromString("0.80")},
		{Name: "Grass Jelly", Price: decimal.RequireFromString("0.60")},
		{Name: "Aloe Vera", Price: decimal.RequireFromString("0.65")},
		{Name: "Pudding", Price: decimal.RequireFromString("0.70")},
		{Name: "Red Bean", Price: decimal.RequireFromString("0.75")},
		{Name: "Coconut Jelly", Price: decimal.RequireFromString("0.65")},
		{Name: "Popping Boba", Price: decimal.RequireFromString("0.85")},
		{Name: "Cheese Foam", Price: decimal.RequireFromString("1.00")},
	}

	seedDrinks = []model.Drink{
		{Name: "Classic Milk Tea", BasePrice: decimal.RequireFromString("4.50"), Description: "Traditional black tea with creamy milk, a timeless favorite"},
		{Name: "Brown Sugar Boba Milk", BasePrice: decimal.RequireFromString("5.50"), Description: "Fresh milk with rich brown sugar syrup and chewy tapioca pearls"},
		{Name: "Thai Milk Tea", BasePrice: decimal.RequireFromString("5.00"), Description: "Authentic Thai tea with condensed milk, sweet and aromatic"},
		{Name: "Taro Milk Tea", BasePrice: decimal.RequireFromString("5.25"), Description: "Creamy taro blended with milk, naturally sweet and purple"},
		{Name: "Matcha Latte", BasePrice: decimal.RequireFromString("5.75"), Description: "Premium Japanese matcha powder with steamed milk"},
		{Name: "Jasmine Green Tea", BasePrice: decimal.RequireFromString("4.00"), Description: "Fragrant jasmine green tea, light and refreshing"},
		{Name: "Passion Fruit Tea", BasePrice: decimal.RequireFromString("4.75"), Description: "Fresh passion fruit with green tea, tangy and sweet"},
		{Name: "Mango Smoothie", BasePrice: decimal.RequireFromString("5.50"), Description: "Fresh mango blended with ice and milk, tropical delight"},
		{Name: "Wintermelon Tea", BasePrice: decimal.RequireFromString("4.25"), Description: "Traditional wintermelon tea, naturally sweet and cooling"},
		{Name: "Oolong Milk Tea", BasePrice: decimal.RequireFromString("4.75"), Description: "Premium oolong tea with fresh milk, smooth and aromatic"},
		{Name: "Hokkaido Milk Tea", BasePrice: decimal.RequireFromString("5.50"), Description: "Rich Hokkaido milk with black tea, extra creamy"},
		{Name: "Strawberry Milk Tea", BasePrice: decimal.RequireFromString("5.25"), Description: "Fresh strawberry flavor with milk tea base, fruity and sweet"},
	}
)

// SeedCatalog fills an empty catalog with the default menu. It reports whether rows were inserted.
func (s *Storage) SeedCatalog(ctx context.Context) (bool, error) {
	seeded := false
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var drinks int64
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM drinks`).Scan(&drinks); err != nil {
			return fmt.Errorf("count drinks: %w", err)
		}
		if drinks > 0 {
			return nil
		}

		for _, sz := range seedSizes {
			if _, err := tx.Exec(ctx, `INSERT INTO sizes (name, price_multiplier) VALUES ($1, $2)`, sz.Name, sz.PriceMultiplier.String()); err != nil {
				return fmt.Errorf("seed size %q: %w", sz.Name, err)
			}
		}
		for _, f := range seedFlavors {
			if _, err := tx.Exec(ctx, `INSERT INTO flavors (name, additional_price) VALUES ($1, $2)`, f.Name, money(f.AdditionalPrice)); err != nil {
				return fmt.Errorf("seed flavor %q: %w", f.Name, err)
			}
		}
		for _, t := range seedToppings {
			if _, err := tx.Exec(ctx, `INSERT INTO toppings (name, price) VALUES ($1, $2)`, t.Name, money(t.Price)); err != nil {
				return fmt.Errorf("seed topping %q: %w", t.Name, err)
			}
		}
		for _, d := range seedDrinks {
			if _, err := tx.Exec(ctx, `INSERT INTO drinks (name, description, base_price, is_available) VALUES ($1, $2, $3, TRUE)`, d.Name, d.Description, money(d.BasePrice)); err != nil {
				return fmt.Errorf("seed drink %q: %w", d.Name, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded && s.logger != nil {
		s.logger.Info("catalog seeded",
			slog.Int("sizes", len(seedSizes)),
			slog.Int("flavors", len(seedFlavors)),
			slog.Int("toppings", len(seedToppings)),
			slog.Int("drinks", len(seedDrinks)),
		)
	}
	return seeded, nil
}
