package transferrepo

import (
	"context"
	"fmt"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFundGateway implements the FundGateway port by recording transfers.
// When obtained from a unit of work it writes on the transaction connection,
// so a rolled back transition leaves no trace of the movement.
type GormFundGateway struct {
	db *gorm.DB
}

// NewGormFundGateway creates a new GORM-backed fund gateway.
func NewGormFundGateway(db *gorm.DB) *GormFundGateway {
	return &GormFundGateway{db: db}
}

// Capture records the buyer's deposit into escrow.
func (g *GormFundGateway) Capture(ctx context.Context, orderID int64, from kernel.UUID, amount kernel.Money) error {
	return g.record(ctx, orderID, KindCapture, from, amount)
}

// Payout records the escrow release to the supplier.
func (g *GormFundGateway) Payout(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error {
	return g.record(ctx, orderID, KindPayout, to, amount)
}

// Refund records the escrow refund to the buyer.
func (g *GormFundGateway) Refund(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error {
	return g.record(ctx, orderID, KindRefund, to, amount)
}

func (g *GormFundGateway) record(
	ctx context.Context,
	orderID int64,
	kind int,
	account kernel.UUID,
	amount kernel.Money,
) error {
	if err := account.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("transfer amount must be positive, got %s", amount)
	}

	dto := TransferDTO{
		ID:        uuid.New(),
		OrderID:   orderID,
		Kind:      kind,
		AccountID: account.Bytes(),
		Amount:    amount.Amount(),
		CreatedAt: time.Now().UTC(),
	}
	return g.db.WithContext(ctx).Create(&dto).Error
}
