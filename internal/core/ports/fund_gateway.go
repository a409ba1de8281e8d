package ports

import (
	"context"

	"fuelsettlement/internal/core/domain/model/kernel"
)

// FundGateway executes the external value transfers that mirror escrow
// accounting: the capture of the buyer's payment at creation, and the single
// outbound movement when the escrow is released. Only code driven through
// the vault may move custodied value.
//
// Implementations record every movement durably; a gateway obtained from a
// unit of work participates in its transaction, so a transfer is never
// visible without the status change it belongs to, or vice versa.
type FundGateway interface {
	// Capture records the inbound movement of the buyer's payment into
	// custody for the given order.
	Capture(ctx context.Context, orderID int64, from kernel.UUID, amount kernel.Money) error

	// Payout records the outbound movement of the full held amount to the
	// supplier on delivery confirmation.
	Payout(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error

	// Refund records the outbound movement of the full held amount back to
	// the buyer on cancellation or decline.
	Refund(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error
}
