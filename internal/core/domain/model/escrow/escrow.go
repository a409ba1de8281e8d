package escrow

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
)

var (
	// ErrEscrowIsNotConstructed is returned when an Escrow instance was not created
	// through the NewEscrow factory method.
	ErrEscrowIsNotConstructed = errors.New("Escrow must be created via NewEscrow constructor")

	// ErrConservationViolated indicates that an escrow's held and released amounts
	// no longer add up to the order's total. This is a bug in the vault, not a
	// business error: callers must abort the operation and never suppress it.
	ErrConservationViolated = errors.New("escrow conservation invariant violated")
)

// Recipient identifies the destination of a released escrow amount.
// It is set exactly once, at the transition that drains the escrow.
type Recipient int

const (
	// NotReleased means the escrow still holds the captured amount.
	NotReleased Recipient = iota

	// ToBuyer means the held amount was refunded to the buyer (cancel or decline).
	ToBuyer

	// ToSupplier means the held amount was paid out to the supplier (delivery).
	ToSupplier
)

// String returns the human-readable name of the recipient.
func (r Recipient) String() string {
	switch r {
	case NotReleased:
		return "NotReleased"
	case ToBuyer:
		return "Buyer"
	case ToSupplier:
		return "Supplier"
	default:
		return "Unknown"
	}
}

// Validate checks that the Recipient is one of the defined values.
func (r Recipient) Validate() error {
	if r < NotReleased || r > ToSupplier {
		return errs.NewValueIsInvalidErrorWithCause("recipient",
			fmt.Errorf("%d is not a valid recipient", r))
	}
	return nil
}

// Escrow custodies the value captured for exactly one order. It is the
// aggregate root of the vault: the only place where custodied value is
// accounted, and the guard of the conservation invariant
//
//	held + released == total
//
// at every observable point. The full captured amount is released exactly
// once, either to the supplier (settlement payout) or back to the buyer
// (refund); partial releases do not exist.
//
// Escrow records are keyed by the order identifier and never pooled: a
// failure in one order's settlement cannot affect another's balance.
type Escrow struct {
	// orderID keys the escrow 1:1 to its order
	orderID int64

	// held is the amount currently in custody
	held kernel.Money

	// released is the amount already moved to its final recipient
	released kernel.Money

	// releasedTo records the destination of the release, set exactly once
	releasedTo Recipient

	// isConstructed ensures the escrow was created via NewEscrow or RestoreEscrow
	isConstructed bool
}

// NewEscrow captures funds for a newly created order. The buyer must have
// attached a payment of at least the order's total; otherwise the capture
// fails with errs.ErrInsufficientFunds and no escrow record exists.
//
// The escrow holds exactly the total; any excess payment stays with the
// caller and is never custodied.
//
// Parameters:
//   - orderID: identifier of the order being funded (must be positive)
//   - total: the order's derived total amount (must be positive)
//   - payment: the value attached to the creation request
func NewEscrow(orderID int64, total kernel.Money, payment kernel.Money) (*Escrow, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	if !total.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is not greater than 0", total))
	}
	if !payment.IsGreaterOrEqual(total) {
		return nil, errs.NewInsufficientFundsError(total.Amount(), payment.Amount())
	}

	return &Escrow{
		orderID:       orderID,
		held:          total,
		released:      kernel.ZeroMoney(),
		releasedTo:    NotReleased,
		isConstructed: true,
	}, nil
}

// RestoreEscrow reconstructs an Escrow from persistence.
// The stored amounts and release marker are checked for consistency:
// an unreleased escrow must hold everything, a released one nothing.
func RestoreEscrow(orderID int64, held, released kernel.Money, releasedTo Recipient) (*Escrow, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}
	if err := releasedTo.Validate(); err != nil {
		return nil, err
	}
	if releasedTo == NotReleased && !released.IsZero() {
		return nil, fmt.Errorf("%w: order %d released %s without a recipient",
			ErrConservationViolated, orderID, released)
	}
	if releasedTo != NotReleased && !held.IsZero() {
		return nil, fmt.Errorf("%w: order %d still holds %s after release to %s",
			ErrConservationViolated, orderID, held, releasedTo)
	}

	return &Escrow{
		orderID:       orderID,
		held:          held,
		released:      released,
		releasedTo:    releasedTo,
		isConstructed: true,
	}, nil
}

// Validate ensures the Escrow instance was properly constructed.
func (e *Escrow) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEscrowIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order this escrow funds.
func (e *Escrow) OrderID() int64 {
	return e.orderID
}

// Held returns the amount currently in custody.
func (e *Escrow) Held() kernel.Money {
	return e.held
}

// Released returns the amount already moved to its final recipient.
func (e *Escrow) Released() kernel.Money {
	return e.released
}

// ReleasedTo returns the destination of the release, or NotReleased.
func (e *Escrow) ReleasedTo() Recipient {
	return e.releasedTo
}

// IsReleased reports whether the held amount has been moved out.
func (e *Escrow) IsReleased() bool {
	return e.releasedTo != NotReleased
}

// Total returns the captured total: held plus released. By construction this
// equals the order's total at every observable point.
func (e *Escrow) Total() kernel.Money {
	total, err := e.held.Add(e.released)
	if err != nil {
		// held and released came from one bounded capture; their sum cannot overflow
		panic(fmt.Sprintf("escrow order %d: %v", e.orderID, err))
	}
	return total
}

// Release moves the full held amount to the given recipient and zeroes the
// held balance. Returns the moved amount so the caller can execute the
// external value transfer.
//
// Fails with errs.ErrAlreadyReleased if the held amount is already zero:
// a second release attempt never moves additional value.
func (e *Escrow) Release(to Recipient) (kernel.Money, error) {
	if to != ToBuyer && to != ToSupplier {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("recipient",
			fmt.Errorf("%s is not a valid release destination", to))
	}
	if e.releasedTo != NotReleased || e.held.IsZero() {
		return kernel.Money{}, errs.NewAlreadyReleasedError(e.orderID)
	}

	amount := e.held
	e.held = kernel.ZeroMoney()
	e.released = amount
	e.releasedTo = to
	return amount, nil
}

// CheckConservation verifies that held + released equals the order's derived
// total. A mismatch returns ErrConservationViolated, which indicates a vault
// bug and must abort the surrounding operation.
func (e *Escrow) CheckConservation(orderTotal kernel.Money) error {
	if !e.Total().IsEqual(orderTotal) {
		return fmt.Errorf("%w: order %d accounts for %s of %s",
			ErrConservationViolated, e.orderID, e.Total(), orderTotal)
	}
	return nil
}
