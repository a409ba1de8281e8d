// Package transferrepo records every fund movement as an audit row.
package transferrepo

import (
	"time"

	"github.com/google/uuid"
)

// Transfer kinds. Capture moves money from the buyer into escrow; payout and
// refund move it out to the supplier or back to the buyer.
const (
	KindCapture = iota + 1
	KindPayout
	KindRefund
)

// TransferDTO represents one recorded fund movement.
type TransferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   int64     `gorm:"index"`
	Kind      int
	AccountID uuid.UUID `gorm:"type:uuid"`
	Amount    int64
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "transfers".
func (TransferDTO) TableName() string {
	return "transfers"
}
