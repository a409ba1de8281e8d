package order

import (
	"fmt"

	"fuelsettlement/internal/pkg/errs"
)

// Status represents the lifecycle state of a fuel order.
// It implements a state machine with defined transitions so every order
// follows the settlement workflow and reaches at most one terminal state.
//
// State transitions:
//
//	Created ──┬──> Delivered ──> Settled
//	          ├──> Declined
//	          └──> Cancelled
//
// Settled, Cancelled and Declined are terminal: no transition leaves them.
// Escrow funds are released exactly once, on the transition that leaves
// Created: to the supplier on delivery confirmation, to the buyer on
// decline or cancel. Settling a Delivered order moves no funds.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// The buyer's payment is held in escrow while the order is in this status.
	Created

	// Delivered indicates the supplier has confirmed delivery.
	// The escrow has been released to the supplier at this point.
	Delivered

	// Settled indicates the order is fully reconciled.
	// Terminal bookkeeping state layered on top of an already-released escrow.
	Settled

	// Cancelled indicates the buyer withdrew the order before delivery.
	// The escrow has been refunded to the buyer. Terminal.
	Cancelled

	// Declined indicates the supplier rejected the order.
	// The escrow has been refunded to the buyer. Terminal.
	Declined
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Delivered: "Delivered",
		Settled:   "Settled",
		Cancelled: "Cancelled",
		Declined:  "Declined",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Delivered: "Delivered",
		Settled:   "Settled",
		Cancelled: "Cancelled",
		Declined:  "Declined",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Created, Delivered, Settled, Cancelled, Declined.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the integer code collaborators see on the wire:
// 0=Created, 1=Delivered, 2=Settled, 3=Cancelled, 4=Declined.
func (s Status) Code() int {
	return int(s) - 1
}

// StatusFromCode converts a wire code back into a Status.
// Returns an error for codes outside 0..4.
func StatusFromCode(code int) (Status, error) {
	s := Status(code + 1)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// IsTerminal reports whether no further transition is permitted from the status.
func (s Status) IsTerminal() bool {
	return s == Settled || s == Cancelled || s == Declined
}

// ConfirmDelivery transitions the status to Delivered.
//
// Valid transitions:
//   - Created -> Delivered
//
// Returns (Delivered, nil) on a valid transition, or (0, error) with
// errs.ErrInvalidTransition when the order is not in Created status.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError("confirm delivery", s.String())
	}
	return Delivered, nil
}

// Decline transitions the status to Declined.
//
// Valid transitions:
//   - Created -> Declined
//
// Returns (Declined, nil) on a valid transition, or (0, error) with
// errs.ErrInvalidTransition when the order is not in Created status.
func (s Status) Decline() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError("decline", s.String())
	}
	return Declined, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//
// Returns (Cancelled, nil) on a valid transition, or (0, error) with
// errs.ErrInvalidTransition when the order is not in Created status.
func (s Status) Cancel() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// Settle transitions the status to Settled.
//
// Valid transitions:
//   - Delivered -> Settled
//
// Settling performs no fund movement; the escrow was already released when
// delivery was confirmed. Returns (Settled, nil) on a valid transition, or
// (0, error) with errs.ErrInvalidTransition otherwise, including repeated
// settle calls on an already Settled order.
func (s Status) Settle() (Status, error) {
	if s != Delivered {
		return 0, errs.NewInvalidTransitionError("settle", s.String())
	}
	return Settled, nil
}
