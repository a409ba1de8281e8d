package eventrepo

import (
	"context"

	"fuelsettlement/internal/core/ports"

	"gorm.io/gorm"
)

// GormEventLog implements the EventLog port on the plain database connection.
// Appends run outside the command's unit of work: the transition is already
// committed when the event is written, and a failed append must not undo it.
type GormEventLog struct {
	db *gorm.DB
}

// NewGormEventLog creates a new GORM-backed event log.
func NewGormEventLog(db *gorm.DB) *GormEventLog {
	return &GormEventLog{db: db}
}

// Append writes one event to the log.
func (l *GormEventLog) Append(ctx context.Context, event ports.OrderEvent) error {
	if err := event.ID.Validate(); err != nil {
		return err
	}

	dto := fromPort(event)
	return l.db.WithContext(ctx).Create(&dto).Error
}
