package commands

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand or NewAutomatedSettleOrderCommand constructor",
)

// SettleOrderCommand represents finalization of a delivered order.
// Settling closes the books on an order whose escrow has already been paid
// out; no funds move. It comes either from the supplier or from the periodic
// finalization job.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	caller    kernel.UUID
	automated bool

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle an order on behalf of a
// caller. The caller must be the order's supplier; that check happens in the
// handler against the stored order.
func NewSettleOrderCommand(orderID int64, caller kernel.UUID) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCaller(caller),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// NewAutomatedSettleOrderCommand creates a settle command issued by the
// finalization job rather than an account. Automated settlement skips the
// supplier check and records no actor in the event log.
func NewAutomatedSettleOrderCommand(orderID int64) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		automated: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c SettleOrderCommand) OrderID() int64 {
	return c.orderID
}

// Caller returns the account requesting the settlement.
// Zero value when the command is automated.
func (c SettleOrderCommand) Caller() kernel.UUID {
	return c.caller
}

// IsAutomated reports whether the command was issued by the finalization job.
func (c SettleOrderCommand) IsAutomated() bool {
	return c.automated
}

func (c *SettleOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not greater than 0", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *SettleOrderCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
