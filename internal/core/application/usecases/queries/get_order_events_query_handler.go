package queries

import (
	"context"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler reads an order's append-only event log.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for event history queries.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle executes the query and returns events after the cursor, ordered by
// sequence number. Returns an ObjectNotFound error when the order does not
// exist.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderCount int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM orders WHERE id = ?`, query.OrderID(),
	).Scan(&orderCount).Error; err != nil {
		return nil, err
	}
	if orderCount == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	events := make([]GetOrderEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			id,
			order_id,
			from_status,
			to_status,
			actor_id,
			occurred_at
		FROM order_events
		WHERE order_id = ? AND seq > ?
		ORDER BY seq
	`, query.OrderID(), query.AfterSeq()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var eventResp GetOrderEventsQueryResponse
		var eventID uuid.UUID
		var fromStatus, toStatus int
		var actorID uuid.NullUUID
		var occurredAt time.Time

		err = rows.Scan(
			&eventResp.Seq,
			&eventID,
			&eventResp.OrderID,
			&fromStatus,
			&toStatus,
			&actorID,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(eventID[:])
		if idErr != nil {
			return nil, idErr
		}
		eventResp.ID = id

		if from := order.Status(fromStatus); from != order.Unknown {
			if statusErr := from.Validate(); statusErr != nil {
				return nil, statusErr
			}
			code := from.Code()
			eventResp.FromStatusCode = &code
		}

		to := order.Status(toStatus)
		if statusErr := to.Validate(); statusErr != nil {
			return nil, statusErr
		}
		eventResp.ToStatusCode = to.Code()

		if actorID.Valid {
			actor, actorErr := kernel.UUIDFromBytes(actorID.UUID[:])
			if actorErr != nil {
				return nil, actorErr
			}
			eventResp.Actor = &actor
		}

		eventResp.OccurredAt = occurredAt.UTC()
		events = append(events, eventResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
