package dto

// DrinkResponse describes a drink offered on the menu.
type DrinkResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BasePrice   string `json:"base_price"`
}

// SizeResponse describes a cup size.
type SizeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PriceMultiplier string `json:"price_multiplier"`
}

// FlavorResponse describes an optional flavor.
type FlavorResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	AdditionalPrice string `json:"additional_price"`
}

// ToppingResponse describes a topping.
type ToppingResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// MenuResponse lists the catalog, optionally with the current selection.
type MenuResponse struct {
	Notice    string             `json:"notice,omitempty"`
	Drinks    []DrinkResponse    `json:"drinks"`
	Sizes     []SizeResponse     `json:"sizes"`
	Flavors   []FlavorResponse   `json:"flavors"`
	Toppings  []ToppingResponse  `json:"toppings"`
	Selection *SelectionResponse `json:"selection,omitempty"`
}
