package commands

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a supplier's confirmation that fuel was
// delivered for an order. Confirmation releases the escrowed funds to the
// supplier.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	caller  kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm delivery of an order.
// The caller must be the order's supplier; that check happens in the handler
// against the stored order.
func NewConfirmDeliveryCommand(orderID int64, caller kernel.UUID) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c ConfirmDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// Caller returns the account requesting the confirmation.
func (c ConfirmDeliveryCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
