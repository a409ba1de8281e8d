package order

import (
	"errors"
	"fmt"
	"time"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a storage-assigned identifier.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order represents a fuel purchase between a buyer and a supplier. It is the
// aggregate root that manages the order lifecycle from creation through
// delivery confirmation to a terminal state.
//
// Order follows these invariants:
//   - Buyer and supplier are valid, distinct identities, immutable after creation
//   - Quantity (litres) is positive
//   - Price per litre is positive, in the settlement currency's smallest unit
//   - The total amount is always derived as quantity times price, never stored
//   - Status transitions follow the settlement state machine (see Status)
//   - deliveryConfirmed is set only by the Created to Delivered transition
//   - Can only be created through the NewOrder constructor
//
// The identifier is assigned sequentially by storage when the order is first
// persisted; until then ID() returns zero. Orders are never deleted: terminal
// orders remain queryable as the audit trail.
type Order struct {
	// id is the sequential identifier, zero until storage assigns it
	id int64

	// buyer is the account that created and funded the order
	buyer kernel.UUID

	// supplier is the account designated to fulfill the order
	supplier kernel.UUID

	// quantityLitres is the ordered fuel quantity (must be positive)
	quantityLitres int

	// pricePerLitre is the unit price in the smallest currency unit
	pricePerLitre kernel.Money

	// status is the current state in the settlement lifecycle
	status Status

	// deliveryConfirmed records that the supplier attested delivery
	deliveryConfirmed bool

	// createdAt is the creation timestamp
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation. This is the
// only way to create a valid new Order, ensuring all business invariants hold.
//
// Parameters:
//   - buyer: account creating and funding the order (must be a valid UUID)
//   - supplier: account designated to fulfill the order (must be valid and
//     different from buyer)
//   - quantityLitres: ordered quantity (must be positive)
//   - pricePerLitre: unit price (must be positive)
//   - createdAt: creation timestamp
//
// Returns the created order, or a validation error if any parameter is
// invalid. The constructor also verifies that the derived total does not
// overflow, so TotalAmount never fails afterwards.
func NewOrder(
	buyer kernel.UUID,
	supplier kernel.UUID,
	quantityLitres int,
	pricePerLitre kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setBuyer(buyer),
		o.setSupplier(supplier),
		o.setQuantityLitres(quantityLitres),
		o.setPricePerLitre(pricePerLitre),
	); err != nil {
		return nil, err
	}

	if o.buyer.IsEqual(o.supplier) {
		return nil, errs.NewValueIsInvalidErrorWithCause("supplier",
			errors.New("buyer and supplier must be different accounts"))
	}

	if _, err := o.pricePerLitre.MulQuantity(o.quantityLitres); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation-time transition rules. The stored status and delivery flag are
// validated for consistency before the aggregate is returned.
func RestoreOrder(
	id int64,
	buyer kernel.UUID,
	supplier kernel.UUID,
	quantityLitres int,
	pricePerLitre kernel.Money,
	status Status,
	deliveryConfirmed bool,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(buyer, supplier, quantityLitres, pricePerLitre, createdAt)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", id))
	}
	if statusErr := status.Validate(); statusErr != nil {
		return nil, statusErr
	}
	if deliveryConfirmed && status != Delivered && status != Settled {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveryConfirmed",
			fmt.Errorf("%s is not a valid status for a confirmed delivery", status))
	}

	o.id = id
	o.status = status
	o.deliveryConfirmed = deliveryConfirmed
	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// AssignID records the storage-assigned sequential identifier.
// Called exactly once by the repository when the order is first persisted.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	return nil
}

// IsEqual compares two orders by their identifiers.
// Orders without a storage-assigned identifier are never equal.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the order's sequential identifier, or zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// Buyer returns the account that created and funded the order.
func (o *Order) Buyer() kernel.UUID {
	return o.buyer
}

// Supplier returns the account designated to fulfill the order.
func (o *Order) Supplier() kernel.UUID {
	return o.supplier
}

// QuantityLitres returns the ordered fuel quantity.
func (o *Order) QuantityLitres() int {
	return o.quantityLitres
}

// PricePerLitre returns the unit price.
func (o *Order) PricePerLitre() kernel.Money {
	return o.pricePerLitre
}

// TotalAmount returns the derived total: quantity times price per litre.
// The value is always recomputed; it is never stored or independently settable.
func (o *Order) TotalAmount() kernel.Money {
	// overflow was ruled out at construction
	total, _ := o.pricePerLitre.MulQuantity(o.quantityLitres)
	return total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryConfirmed reports whether the supplier has attested delivery.
func (o *Order) DeliveryConfirmed() bool {
	return o.deliveryConfirmed
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmDelivery marks the order as delivered by the supplier.
//
// Business rules:
//   - The order must be in Created status
//   - deliveryConfirmed is set true, exactly once
//
// The caller's authority to perform this action is checked separately by the
// access control service; the escrow release to the supplier is coordinated
// by the command handler in the same transaction.
func (o *Order) ConfirmDelivery() error {
	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryConfirmed = true
	return nil
}

// Decline marks the order as rejected by the supplier.
// The order must be in Created status; the escrow refund to the buyer is
// coordinated by the command handler in the same transaction.
func (o *Order) Decline() error {
	newStatus, err := o.status.Decline()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as withdrawn by the buyer.
// The order must be in Created status; the escrow refund to the buyer is
// coordinated by the command handler in the same transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Settle marks a delivered order as fully reconciled.
// The order must be in Delivered status. No funds move: the escrow was
// already released when delivery was confirmed.
func (o *Order) Settle() error {
	newStatus, err := o.status.Settle()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setBuyer validates and sets the buyer account.
// This is a private method used only during construction.
func (o *Order) setBuyer(buyer kernel.UUID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	o.buyer = buyer
	return nil
}

// setSupplier validates and sets the supplier account.
// This is a private method used only during construction.
func (o *Order) setSupplier(supplier kernel.UUID) error {
	if err := supplier.Validate(); err != nil {
		return err
	}
	o.supplier = supplier
	return nil
}

// setQuantityLitres validates and sets the ordered quantity.
// Quantity must be positive. This is a private method used only during construction.
func (o *Order) setQuantityLitres(quantityLitres int) error {
	if quantityLitres <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityLitres",
			fmt.Errorf("%d is not greater than 0", quantityLitres))
	}
	o.quantityLitres = quantityLitres
	return nil
}

// setPricePerLitre validates and sets the unit price.
// Price must be positive. This is a private method used only during construction.
func (o *Order) setPricePerLitre(pricePerLitre kernel.Money) error {
	if !pricePerLitre.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("pricePerLitre",
			fmt.Errorf("%s is not greater than 0", pricePerLitre))
	}
	o.pricePerLitre = pricePerLitre
	return nil
}
