package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleLine() model.Line {
	return model.Line{
		Drink:  model.Drink{ID: 1, Name: "Classic Milk Tea", BasePrice: dec("4.50"), Available: true},
		Size:   model.Size{ID: 3, Name: "Large (20oz)", PriceMultiplier: dec("1.25")},
		Flavor: &model.Flavor{ID: 2, Name: "Taro", AdditionalPrice: dec("0.50")},
		Toppings: []model.Topping{
			{ID: 1, Name: "Tapioca Pearls", Price: dec("0.75")},
		},
		Quantity: 2,
	}
}

func TestPriceLineReferenceScenario(t *testing.T) {
	quote, err := PriceLine(sampleLine())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.Unit.Equal(dec("6.875")) {
		t.Fatalf("expected unit 6.875, got %s", quote.Unit)
	}
	if !quote.Total.Equal(dec("13.75")) {
		t.Fatalf("expected total 13.75, got %s", quote.Total)
	}
	if FormatCurrency(quote.Total) != "13.75" {
		t.Fatalf("unexpected formatted total %q", FormatCurrency(quote.Total))
	}
}

func TestPriceLinePlainDrink(t *testing.T) {
	line := model.Line{
		Drink:    model.Drink{BasePrice: dec("4.00")},
		Size:     model.Size{PriceMultiplier: dec("1.00")},
		Quantity: 1,
	}
	quote, err := PriceLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.Total.Equal(dec("4.00")) {
		t.Fatalf("expected 4.00, got %s", quote.Total)
	}
}

func TestPriceLineIsUnitTimesQuantity(t *testing.T) {
	line := sampleLine()
	line.Toppings = append(line.Toppings, model.Topping{ID: 9, Name: "Cheese Foam", Price: dec("1.00")})
	for _, qty := range []int{1, 2, 3, 7, MaxQuantity} {
		line.Quantity = qty
		quote, err := PriceLine(line)
		if err != nil {
			t.Fatalf("qty %d: unexpected error: %v", qty, err)
		}
		want := UnitPrice(line).Mul(decimal.NewFromInt(int64(qty)))
		if !quote.Total.Equal(want) {
			t.Fatalf("qty %d: expected %s, got %s", qty, want, quote.Total)
		}
	}
}

func TestPriceLineIgnoresToppingOrder(t *testing.T) {
	toppings := []model.Topping{
		{ID: 1, Price: dec("0.75")},
		{ID: 2, Price: dec("0.80")},
		{ID: 3, Price: dec("0.65")},
	}
	line := sampleLine()
	line.Toppings = toppings
	forward, err := PriceLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line.Toppings = []model.Topping{toppings[2], toppings[0], toppings[1]}
	shuffled, err := PriceLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !forward.Total.Equal(shuffled.Total) {
		t.Fatalf("topping order changed total: %s vs %s", forward.Total, shuffled.Total)
	}
}

func TestPriceLineDoesNotRoundIntermediate(t *testing.T) {
	line := model.Line{
		Drink:    model.Drink{BasePrice: dec("4.25")},
		Size:     model.Size{PriceMultiplier: dec("0.85")},
		Quantity: 3,
	}
	quote, err := PriceLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4.25 * 0.85 = 3.6125, rounding per unit first would yield 10.83
	if !quote.Total.Equal(dec("10.8375")) {
		t.Fatalf("expected exact 10.8375, got %s", quote.Total)
	}
	if !RoundCurrency(quote.Total).Equal(dec("10.84")) {
		t.Fatalf("expected rounded 10.84, got %s", RoundCurrency(quote.Total))
	}
}

func TestPriceLineValidation(t *testing.T) {
	for _, qty := range []int{0, -1, MaxQuantity + 1, 1 << 20} {
		line := sampleLine()
		line.Quantity = qty
		if _, err := PriceLine(line); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected invalid quantity, got %v", qty, err)
		}
	}

	line := sampleLine()
	line.Size.PriceMultiplier = decimal.Zero
	if _, err := PriceLine(line); !errors.Is(err, domainErrors.ErrInvalidMultiplier) {
		t.Fatalf("expected invalid multiplier, got %v", err)
	}

	line = sampleLine()
	line.Drink.BasePrice = dec("50000000.00")
	if _, err := PriceLine(line); !errors.Is(err, domainErrors.ErrInvalidQuantity) {
		t.Fatalf("expected total above storable amount to be rejected, got %v", err)
	}
}

func TestPriceLinePreviewMatchesFinalization(t *testing.T) {
	captured := sampleLine()
	preview, err := PriceLine(captured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	final, err := PriceLine(captured)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Total.String() != final.Total.String() || !preview.Unit.Equal(final.Unit) {
		t.Fatalf("preview %s differs from final %s", preview.Total, final.Total)
	}
}
