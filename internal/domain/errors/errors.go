package errors

import "errors"

var (
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidMultiplier    = errors.New("size multiplier must be positive")
	ErrDrinkUnavailable     = errors.New("drink is not available")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrMissingSelection     = errors.New("no item selected")
	ErrMissingPaymentMethod = errors.New("payment method not selected")
	ErrOrderNumberExhausted = errors.New("unable to allocate unique order number")
	ErrStatusConflict       = errors.New("order status changed concurrently")
)
