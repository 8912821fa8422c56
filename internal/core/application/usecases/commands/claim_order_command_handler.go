package commands

import (
	"context"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/services"
	"lytefood/internal/core/ports"
)

// ClaimOrderCommandHandler lets a courier take a ready order. The claim is
// checked against the courier transition table locally (only ready orders
// move to en route), then the order service records both the status change
// and the courier assignment.
type ClaimOrderCommandHandler struct {
	orderClient ports.OrderClient
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(orderClient ports.OrderClient) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		orderClient: orderClient,
	}
}

// Handle processes the claim command. Claiming an order that is no longer
// ready, for example because another courier got there first, fails with
// an error wrapping order.ErrTransitionNotAllowed.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, cmd.Token(), cmd.OrderID())
	if err != nil {
		return err
	}

	role := services.ActingRole(cmd.Roles())
	if err = aggregate.Claim(cmd.CourierID(), role); err != nil {
		return err
	}

	if err = h.orderClient.ChangeStatus(ctx, cmd.Token(), cmd.OrderID(), order.EnRoute); err != nil {
		return err
	}

	return h.orderClient.AssignCourier(ctx, cmd.Token(), cmd.OrderID(), cmd.CourierID())
}
