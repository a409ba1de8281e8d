package escrowrepo

import (
	"context"
	"errors"

	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormEscrowRepository creates a new GORM escrow repository.
func NewGormEscrowRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowRepository {
	return &GormEscrowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new escrow record to the database.
func (r *GormEscrowRepository) Add(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Update saves an existing escrow record to the database.
func (r *GormEscrowRepository) Update(ctx context.Context, aggregate *escrow.Escrow) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EscrowDTO{}).
		Where("order_id = ?", dto.OrderID).
		Updates(map[string]any{
			"held":        dto.Held,
			"released":    dto.Released,
			"released_to": dto.ReleasedTo,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("escrow", dto.OrderID)
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// Get retrieves the escrow record of an order.
func (r *GormEscrowRepository) Get(ctx context.Context, orderID int64) (*escrow.Escrow, error) {
	var dto EscrowDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves the escrow record of an order holding a row lock
// until the surrounding transaction completes.
func (r *GormEscrowRepository) GetForUpdate(ctx context.Context, orderID int64) (*escrow.Escrow, error) {
	var dto EscrowDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}
