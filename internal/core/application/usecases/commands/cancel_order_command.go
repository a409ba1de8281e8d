package commands

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a buyer's withdrawal of an order before
// delivery. Cancelling refunds the escrowed funds back to the buyer.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	caller  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The caller must be the order's buyer; that check happens in the handler
// against the stored order.
func NewCancelOrderCommand(orderID int64, caller kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// Caller returns the account requesting the cancellation.
func (c CancelOrderCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *CancelOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
