package dto

// SelectionRequest carries the drink customization submitted as JSON or form data.
type SelectionRequest struct {
	DrinkID  int64   `json:"drink_id" form:"drink_id"`
	SizeID   int64   `json:"size_id" form:"size_id"`
	FlavorID *int64  `json:"flavor_id" form:"flavor_id"`
	Toppings []int64 `json:"toppings" form:"toppings"`
	Quantity *int    `json:"quantity" form:"quantity"`
}

// SelectionResponse is the priced selection held in the session.
type SelectionResponse struct {
	Drink         DrinkResponse     `json:"drink"`
	Size          SizeResponse      `json:"size"`
	Flavor        *FlavorResponse   `json:"flavor,omitempty"`
	Toppings      []ToppingResponse `json:"toppings"`
	Quantity      int               `json:"quantity"`
	UnitPrice     string            `json:"unit_price"`
	ItemPrice     string            `json:"item_price"`
	PaymentMethod string            `json:"payment_method,omitempty"`
}

// CheckoutResponse wraps the selection with the next step of the flow.
type CheckoutResponse struct {
	Notice    string            `json:"notice,omitempty"`
	Selection SelectionResponse `json:"selection"`
	Next      string            `json:"next"`
}

// PaymentMethodRequest selects how the customer pays.
type PaymentMethodRequest struct {
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}
