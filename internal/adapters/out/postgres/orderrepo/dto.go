// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is a bigserial assigned by the database on insert; the total
// is stored denormalized so the listing query never recomputes it.
type OrderDTO struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	BuyerID           uuid.UUID `gorm:"type:uuid;index"`
	SupplierID        uuid.UUID `gorm:"type:uuid;index"`
	QuantityLitres    int
	PricePerLitre     int64
	TotalAmount       int64
	Status            int `gorm:"index"`
	DeliveryConfirmed bool
	CreatedAt         time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID(),
		BuyerID:           aggregate.Buyer().Bytes(),
		SupplierID:        aggregate.Supplier().Bytes(),
		QuantityLitres:    aggregate.QuantityLitres(),
		PricePerLitre:     aggregate.PricePerLitre().Amount(),
		TotalAmount:       aggregate.TotalAmount().Amount(),
		Status:            int(aggregate.Status()),
		DeliveryConfirmed: aggregate.DeliveryConfirmed(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and delivery flag using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	buyer, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	supplier, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PricePerLitre)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		buyer,
		supplier,
		dto.QuantityLitres,
		price,
		order.Status(dto.Status),
		dto.DeliveryConfirmed,
		dto.CreatedAt.UTC(),
	)
}
