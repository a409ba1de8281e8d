package http

import "time"

// CreateOrderRequest is the body of POST /api/v1/orders. The buyer is taken
// from the X-Account-ID header, not the body.
type CreateOrderRequest struct {
	SupplierID     string `json:"supplier_id"`
	QuantityLitres int    `json:"quantity_litres"`
	PricePerLitre  int64  `json:"price_per_litre"`
	Payment        int64  `json:"payment"`
}

// CreateOrderResponse returns the database-assigned order identifier.
type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// OrderResponse is one row of GET /api/v1/orders. Status carries the integer
// coding collaborators depend on: 0=created, 1=delivered, 2=settled,
// 3=cancelled, 4=declined.
type OrderResponse struct {
	OrderID           int64     `json:"order_id"`
	BuyerID           string    `json:"buyer_id"`
	SupplierID        string    `json:"supplier_id"`
	QuantityLitres    int       `json:"quantity_litres"`
	PricePerLitre     int64     `json:"price_per_litre"`
	TotalAmount       int64     `json:"total_amount"`
	Status            int       `json:"status"`
	StatusName        string    `json:"status_name"`
	DeliveryConfirmed bool      `json:"delivery_confirmed"`
	CreatedAt         time.Time `json:"created_at"`
}

// OrderEventResponse is one entry of GET /api/v1/orders/:id/events.
// FromStatus is null for the creation event; Actor is null for transitions
// made by the automated finalization job.
type OrderEventResponse struct {
	Seq        int64     `json:"seq"`
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	FromStatus *int      `json:"from_status"`
	ToStatus   int       `json:"to_status"`
	Actor      *string   `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
