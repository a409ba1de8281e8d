// Package escrowrepo persists escrow records, keyed one-to-one by order.
package escrowrepo

import (
	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/model/kernel"
)

// EscrowDTO represents the database structure for persisting escrow records.
type EscrowDTO struct {
	OrderID    int64 `gorm:"primaryKey"`
	Held       int64
	Released   int64
	ReleasedTo int
}

// TableName overrides GORM's default naming convention to use "escrows".
func (EscrowDTO) TableName() string {
	return "escrows"
}

func fromDomain(aggregate *escrow.Escrow) EscrowDTO {
	return EscrowDTO{
		OrderID:    aggregate.OrderID(),
		Held:       aggregate.Held().Amount(),
		Released:   aggregate.Released().Amount(),
		ReleasedTo: int(aggregate.ReleasedTo()),
	}
}

// toDomain reconstructs an escrow record. RestoreEscrow re-checks the
// conservation invariant, so a corrupted row surfaces as an error here
// rather than as silent fund loss.
func toDomain(dto EscrowDTO) (*escrow.Escrow, error) {
	held, err := kernel.NewMoney(dto.Held)
	if err != nil {
		return nil, err
	}

	released, err := kernel.NewMoney(dto.Released)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreEscrow(dto.OrderID, held, released, escrow.Recipient(dto.ReleasedTo))
}
