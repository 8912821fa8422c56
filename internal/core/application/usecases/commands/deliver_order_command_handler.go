package commands

import (
	"context"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/services"
	"lytefood/internal/core/ports"
)

// DeliverOrderCommandHandler closes out a delivery attempt: the order moves
// to delivered on a successful handover, or to failed when the courier
// could not complete it. Both targets sit in the courier transition table
// for en route orders, so the planner refuses the report for any order not
// actually on the road.
type DeliverOrderCommandHandler struct {
	orderClient ports.OrderClient
	planner     services.TransitionPlanner
}

// NewDeliverOrderCommandHandler creates a handler for delivery reports.
func NewDeliverOrderCommandHandler(
	orderClient ports.OrderClient,
	planner services.TransitionPlanner,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		orderClient: orderClient,
		planner:     planner,
	}
}

// Handle processes the delivery report.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, cmd.Token(), cmd.OrderID())
	if err != nil {
		return err
	}

	next := order.Delivered
	if !cmd.Delivered() {
		next = order.Failed
	}

	role := services.ActingRole(cmd.Roles())
	plan, err := h.planner.Plan(aggregate, next, role)
	if err != nil {
		return err
	}

	return h.orderClient.ChangeStatus(ctx, cmd.Token(), cmd.OrderID(), plan.Next)
}
