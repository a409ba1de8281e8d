// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read raw rows over the plain database connection and never
// participate in the unit of work, so reads do not block writers.
package queries

import (
	"errors"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, ascending by ID.
// Terminal orders are never deleted, so the listing doubles as an audit
// trail.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %d: %s, total %d\n", o.ID, o.Status, o.TotalAmount)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order row as exposed to
// collaborators. StatusCode carries the integer coding consumers rely on:
// 0=created, 1=delivered, 2=settled, 3=cancelled, 4=declined.
type GetAllOrdersQueryResponse struct {
	ID                int64
	Buyer             kernel.UUID
	Supplier          kernel.UUID
	QuantityLitres    int
	PricePerLitre     int64
	TotalAmount       int64
	StatusCode        int
	Status            string
	DeliveryConfirmed bool
	CreatedAt         time.Time
}
