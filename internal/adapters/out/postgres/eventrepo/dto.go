// Package eventrepo persists the append-only order event log.
package eventrepo

import (
	"time"

	"fuelsettlement/internal/core/ports"

	"github.com/google/uuid"
)

// OrderEventDTO represents one audit trail entry. The bigserial seq gives
// readers a total order and a restartable cursor; the uuid identifies the
// event across systems.
type OrderEventDTO struct {
	Seq        int64     `gorm:"primaryKey;autoIncrement"`
	ID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OrderID    int64     `gorm:"index"`
	FromStatus int
	ToStatus   int
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time
}

// TableName overrides GORM's default naming convention to use "order_events".
func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromPort(event ports.OrderEvent) OrderEventDTO {
	var actorID *uuid.UUID
	if event.Actor != nil {
		raw := event.Actor.Bytes()
		actorID = &raw
	}

	return OrderEventDTO{
		ID:         event.ID.Bytes(),
		OrderID:    event.OrderID,
		FromStatus: int(event.FromStatus),
		ToStatus:   int(event.ToStatus),
		ActorID:    actorID,
		OccurredAt: event.OccurredAt,
	}
}
