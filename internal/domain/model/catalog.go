package model

import "github.com/shopspring/decimal"

// Drink is a menu beverage priced before size, flavor and toppings.
type Drink struct {
	ID          int64
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Available   bool
}

// Size scales the drink base price by its multiplier.
type Size struct {
	ID              int64
	Name            string
	PriceMultiplier decimal.Decimal
}

// Flavor adds a fixed surcharge, possibly zero.
type Flavor struct {
	ID              int64
	Name            string
	AdditionalPrice decimal.Decimal
}

// Topping adds its price once per unit.
type Topping struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// Menu groups catalog entries offered to customers.
type Menu struct {
	Drinks   []Drink
	Sizes    []Size
	Flavors  []Flavor
	Toppings []Topping
}
