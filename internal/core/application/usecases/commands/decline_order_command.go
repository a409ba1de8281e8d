package commands

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand represents a supplier's refusal to fulfil an order.
// Declining refunds the escrowed funds back to the buyer.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	caller  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command to decline an order.
// The caller must be the order's supplier; that check happens in the handler
// against the stored order.
func NewDeclineOrderCommand(orderID int64, caller kernel.UUID) (DeclineOrderCommand, error) {
	cmd := DeclineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return DeclineOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being declined.
func (c DeclineOrderCommand) OrderID() int64 {
	return c.orderID
}

// Caller returns the account requesting the decline.
func (c DeclineOrderCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *DeclineOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *DeclineOrderCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
