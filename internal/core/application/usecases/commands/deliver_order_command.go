package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a courier's report on an order they are
// carrying: either it was handed over or the delivery failed.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	delivered bool
	roles     session.Roles
	token     string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to close out a delivery attempt.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	delivered bool,
	roles session.Roles,
	token string,
) (DeliverOrderCommand, error) {
	deliverCommand := DeliverOrderCommand{
		delivered: delivered,
		roles:     roles,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliverCommand.setOrderID(orderID),
		deliverCommand.setToken(token),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order being closed out.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Delivered reports whether the handover succeeded.
func (c DeliverOrderCommand) Delivered() bool {
	return c.delivered
}

// Roles returns the courier's capability flags.
func (c DeliverOrderCommand) Roles() session.Roles {
	return c.roles
}

// Token returns the courier's bearer token.
func (c DeliverOrderCommand) Token() string {
	return c.token
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
