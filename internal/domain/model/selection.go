package model

// Line holds the resolved catalog references of a single order item.
type Line struct {
	Drink    Drink
	Size     Size
	Flavor   *Flavor
	Toppings []Topping
	Quantity int
}

// Selection is the in-progress item choice kept in a customer session until placement.
type Selection struct {
	Line          Line
	PaymentMethod PaymentMethod
}

// HasPaymentMethod reports whether payment step was completed.
func (s *Selection) HasPaymentMethod() bool {
	return s != nil && s.PaymentMethod != ""
}

// SelectionInput carries raw catalog identifiers submitted by the customer.
type SelectionInput struct {
	DrinkID    int64
	SizeID     int64
	FlavorID   *int64
	ToppingIDs []int64
	Quantity   int
}
