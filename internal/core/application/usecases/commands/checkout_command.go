package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrTokenIsRequired           = errors.New("token is required")
)

// CheckoutCommand represents a request to turn a customer's cart into an
// order and start the payment flow.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	token           string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the cart.
func NewCheckoutCommand(customerID kernel.UUID, token, deliveryAddress string) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setToken(token),
		checkoutCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the ordering customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Token returns the customer's bearer token.
func (c CheckoutCommand) Token() string {
	return c.token
}

// DeliveryAddress returns the free-text delivery address.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
