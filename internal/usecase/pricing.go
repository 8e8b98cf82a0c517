package usecase

import (
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
)

// CurrencyPlaces is the minor-unit precision used for persisted and displayed amounts.
const CurrencyPlaces = 2

// MaxQuantity bounds units per line.
const MaxQuantity = 99

// maxAmount is the largest total that fits NUMERIC(10,2).
var maxAmount = decimal.RequireFromString("99999999.99")

// UnitPrice computes price of a single unit without rounding.
func UnitPrice(line model.Line) decimal.Decimal {
	price := line.Drink.BasePrice.Mul(line.Size.PriceMultiplier)
	if line.Flavor != nil {
		price = price.Add(line.Flavor.AdditionalPrice)
	}
	for _, t := range line.Toppings {
		price = price.Add(t.Price)
	}
	return price
}

// PriceLine is the only pricing formula: preview and order placement both call it on the
// same captured line.
func PriceLine(line model.Line) (model.Quote, error) {
	if line.Quantity < 1 || line.Quantity > MaxQuantity {
		return model.Quote{}, domainErrors.ErrInvalidQuantity
	}
	if !line.Size.PriceMultiplier.IsPositive() {
		return model.Quote{}, domainErrors.ErrInvalidMultiplier
	}
	unit := UnitPrice(line)
	total := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
	if RoundCurrency(total).GreaterThan(maxAmount) {
		return model.Quote{}, domainErrors.ErrInvalidQuantity
	}
	return model.Quote{Unit: unit, Total: total}, nil
}

// RoundCurrency rounds amount for persistence.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPlaces)
}

// FormatCurrency renders amount with exactly two decimal places.
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyPlaces)
}
