package dto

import "time"

// OrderItemResponse describes a drink within an order.
type OrderItemResponse struct {
	Drink     string   `json:"drink"`
	Size      string   `json:"size"`
	Flavor    *string  `json:"flavor,omitempty"`
	Toppings  []string `json:"toppings"`
	Quantity  int      `json:"quantity"`
	ItemPrice string   `json:"item_price"`
}

// PaymentResponse describes the settlement attached to an order.
type PaymentResponse struct {
	Method        string    `json:"payment_method"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderResponse is the order detail shown while waiting for and receiving a drink.
type OrderResponse struct {
	Number      string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Items       []OrderItemResponse `json:"items"`
	Payment     *PaymentResponse    `json:"payment,omitempty"`
	Next        string              `json:"next,omitempty"`
}

// OrderStatusResponse is the compact status payload polled by clients.
type OrderStatusResponse struct {
	Status      string `json:"status"`
	OrderNumber string `json:"order_number"`
	TotalAmount string `json:"total_amount"`
}

// UpdateStatusRequest asks for an explicit status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse reports the outcome of a status change.
type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
}
