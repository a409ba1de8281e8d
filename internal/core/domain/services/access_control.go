package services

import (
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/pkg/errs"
)

// Action enumerates the settlement transitions a caller can request.
// Each action is gated to exactly one role on the order.
type Action int

const (
	// ActionUnknown represents an undefined action. Never authorized.
	ActionUnknown Action = iota

	// ActionConfirmDelivery attests that fuel was delivered. Supplier only.
	ActionConfirmDelivery

	// ActionDecline rejects the order and refunds the buyer. Supplier only.
	ActionDecline

	// ActionCancel withdraws the order and refunds the buyer. Buyer only.
	ActionCancel

	// ActionSettle finalizes a delivered order. Supplier only; the automated
	// follow-up trigger bypasses role resolution entirely (see the settle
	// command's automated variant).
	ActionSettle
)

// String returns the human-readable name of the action.
func (a Action) String() string {
	switch a {
	case ActionConfirmDelivery:
		return "confirm delivery"
	case ActionDecline:
		return "decline"
	case ActionCancel:
		return "cancel"
	case ActionSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// AccessControl is a domain service that resolves a caller's relationship to
// an order (buyer, supplier, or neither) and authorizes a requested action.
//
// It is a pure function of (caller, order.Buyer(), order.Supplier(), action):
// it consults no other state, mutates nothing, and is deterministic, which
// makes it unit-testable independent of escrow or storage.
//
// Example usage:
//
//	ac := services.NewAccessControl()
//	if err := ac.Authorize(caller, o, services.ActionConfirmDelivery); err != nil {
//	    // caller is not the order's supplier
//	    return err
//	}
type AccessControl struct{}

// NewAccessControl creates a new AccessControl instance.
func NewAccessControl() AccessControl {
	return AccessControl{}
}

// Authorize checks that the caller holds the role the action requires:
// the order's supplier for confirm delivery, decline, and settle; the
// order's buyer for cancel.
//
// Returns nil when authorized, or an errs.ErrUnauthorized error naming the
// required role so the caller can correct the request. The order must be a
// properly constructed aggregate.
func (AccessControl) Authorize(caller kernel.UUID, o *order.Order, action Action) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := caller.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionConfirmDelivery, ActionDecline, ActionSettle:
		if !caller.IsEqual(o.Supplier()) {
			return errs.NewUnauthorizedError("supplier", caller.String())
		}
	case ActionCancel:
		if !caller.IsEqual(o.Buyer()) {
			return errs.NewUnauthorizedError("buyer", caller.String())
		}
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%d is not a valid action", action))
	}

	return nil
}
