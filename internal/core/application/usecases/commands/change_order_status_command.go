package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// ChangeOrderStatusCommand represents an operator's request to move an
// order to a new status. The acting capabilities come from the operator's
// session snapshot, never from the request payload.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	next    order.Status
	roles   session.Roles
	token   string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order status.
// The target status is kept verbatim; whether the transition is allowed is
// decided later against the order's current status and the acting role.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	next order.Status,
	roles session.Roles,
	token string,
) (ChangeOrderStatusCommand, error) {
	changeCommand := ChangeOrderStatusCommand{
		roles: roles,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		changeCommand.setOrderID(orderID),
		changeCommand.setNext(next),
		changeCommand.setToken(token),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return changeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Next returns the requested target status.
func (c ChangeOrderStatusCommand) Next() order.Status {
	return c.next
}

// Roles returns the operator's capability flags.
func (c ChangeOrderStatusCommand) Roles() session.Roles {
	return c.roles
}

// Token returns the operator's bearer token.
func (c ChangeOrderStatusCommand) Token() string {
	return c.token
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNext(next order.Status) error {
	if next == "" {
		return ErrStatusIsRequired
	}

	c.next = next
	return nil
}

func (c *ChangeOrderStatusCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
