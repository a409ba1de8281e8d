package queries

import (
	"context"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists orders straight from the database.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	query := NewGetAllOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d orders on record\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders ascending by ID.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			supplier_id,
			quantity_litres,
			price_per_litre,
			total_amount,
			status,
			delivery_confirmed,
			created_at
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAllOrdersQueryResponse
		var buyerID, supplierID uuid.UUID
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&orderResp.ID,
			&buyerID,
			&supplierID,
			&orderResp.QuantityLitres,
			&orderResp.PricePerLitre,
			&orderResp.TotalAmount,
			&status,
			&orderResp.DeliveryConfirmed,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		buyer, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		supplier, idErr := kernel.UUIDFromBytes(supplierID[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus := order.Status(status)
		if statusErr := orderStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}

		orderResp.Buyer = buyer
		orderResp.Supplier = supplier
		orderResp.StatusCode = orderStatus.Code()
		orderResp.Status = orderStatus.String()
		orderResp.CreatedAt = createdAt.UTC()
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
