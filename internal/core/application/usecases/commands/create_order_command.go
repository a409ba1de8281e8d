package commands

import (
	"errors"
	"fmt"

	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/pkg/errs"
	"fuelsettlement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new fuel order with an
// escrow deposit. Encapsulates the buyer, supplier, the ordered quantity,
// the agreed unit price and the payment offered for escrow.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyer, supplier, 5000, price, payment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, eventLog, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d created with funds held in escrow", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	buyer          kernel.UUID
	supplier       kernel.UUID
	quantityLitres int
	pricePerLitre  kernel.Money
	payment        kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new fuel order.
// Validates that both parties are valid, the quantity is positive and the
// unit price is positive. Whether the payment covers the order total is
// decided by the escrow, not here.
func NewCreateOrderCommand(
	buyer kernel.UUID,
	supplier kernel.UUID,
	quantityLitres int,
	pricePerLitre kernel.Money,
	payment kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setBuyer(buyer),
		orderCommand.setSupplier(supplier),
		orderCommand.setQuantityLitres(quantityLitres),
		orderCommand.setPricePerLitre(pricePerLitre),
		orderCommand.setPayment(payment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Buyer returns the account that pays for the fuel.
func (c CreateOrderCommand) Buyer() kernel.UUID {
	return c.buyer
}

// Supplier returns the account that delivers the fuel.
func (c CreateOrderCommand) Supplier() kernel.UUID {
	return c.supplier
}

// QuantityLitres returns the ordered fuel volume in litres.
func (c CreateOrderCommand) QuantityLitres() int {
	return c.quantityLitres
}

// PricePerLitre returns the agreed unit price.
func (c CreateOrderCommand) PricePerLitre() kernel.Money {
	return c.pricePerLitre
}

// Payment returns the amount the buyer offers for the escrow deposit.
func (c CreateOrderCommand) Payment() kernel.Money {
	return c.payment
}

func (c *CreateOrderCommand) setBuyer(buyer kernel.UUID) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *CreateOrderCommand) setSupplier(supplier kernel.UUID) error {
	if err := supplier.Validate(); err != nil {
		return err
	}

	c.supplier = supplier
	return nil
}

func (c *CreateOrderCommand) setQuantityLitres(quantityLitres int) error {
	if quantityLitres <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityLitres",
			fmt.Errorf("%d is not greater than 0", quantityLitres))
	}

	c.quantityLitres = quantityLitres
	return nil
}

func (c *CreateOrderCommand) setPricePerLitre(pricePerLitre kernel.Money) error {
	if !pricePerLitre.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("pricePerLitre",
			fmt.Errorf("%s is not greater than 0", pricePerLitre))
	}

	c.pricePerLitre = pricePerLitre
	return nil
}

func (c *CreateOrderCommand) setPayment(payment kernel.Money) error {
	c.payment = payment
	return nil
}
