package queries

import (
	"errors"
	"fmt"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves the status change history of one order.
// Collaborators poll it with the sequence number of the last event they saw,
// so the read is ordered and restartable.
//
// Example:
//
//	query, err := NewGetOrderEventsQuery(orderID, lastSeenSeq)
//	if err != nil {
//	    return err
//	}
//
//	events, err := handler.Handle(ctx, query)
//	for _, e := range events {
//	    fmt.Printf("order %d: %d -> %d at %s\n",
//	        e.OrderID, e.FromStatusCode, e.ToStatusCode, e.OccurredAt)
//	}
type GetOrderEventsQuery struct { //nolint:recvcheck //using for validation
	orderID  int64
	afterSeq int64

	guard guard.ConstructorGuard
}

// NewGetOrderEventsQuery creates a query for an order's event history.
// afterSeq of zero means "from the beginning".
func NewGetOrderEventsQuery(orderID int64, afterSeq int64) (GetOrderEventsQuery, error) {
	query := GetOrderEventsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setAfterSeq(afterSeq),
	); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderEventsQuery) OrderID() int64 {
	return q.orderID
}

// AfterSeq returns the cursor: only events with a larger sequence number
// are returned.
func (q GetOrderEventsQuery) AfterSeq() int64 {
	return q.afterSeq
}

func (q *GetOrderEventsQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderEventsQuery) setAfterSeq(afterSeq int64) error {
	if afterSeq < 0 {
		return errs.NewValueIsInvalidErrorWithCause("afterSeq",
			fmt.Errorf("%d is negative", afterSeq))
	}

	q.afterSeq = afterSeq
	return nil
}

// GetOrderEventsQueryResponse represents one entry of an order's audit trail.
// FromStatusCode is nil for the creation event. Actor is nil when the
// transition was made by the automated finalization job.
type GetOrderEventsQueryResponse struct {
	Seq            int64
	ID             kernel.UUID
	OrderID        int64
	FromStatusCode *int
	ToStatusCode   int
	Actor          *kernel.UUID
	OccurredAt     time.Time
}
