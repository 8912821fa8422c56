package commands

import (
	"context"
	"log/slog"

	"lytefood/internal/core/domain/services"
	"lytefood/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies an operator's status change to an
// order held by the order service. The transition is checked locally first
// through the transition planner, so a refused change never reaches the
// wire. When the plan calls for a refund, the refund request fires only
// after the status change succeeded, never before and never for a refused
// transition.
//
// A refund failure does not roll the status change back. The order stays
// cancelled and the failure is logged for manual follow-up; re-running the
// cancellation would be refused anyway since cancelled is terminal.
type ChangeOrderStatusCommandHandler struct {
	orderClient   ports.OrderClient
	paymentClient ports.PaymentClient
	planner       services.TransitionPlanner
	logger        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	orderClient ports.OrderClient,
	paymentClient ports.PaymentClient,
	planner services.TransitionPlanner,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		orderClient:   orderClient,
		paymentClient: paymentClient,
		planner:       planner,
		logger:        logger,
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderClient.Get(ctx, cmd.Token(), cmd.OrderID())
	if err != nil {
		return err
	}

	role := services.ActingRole(cmd.Roles())
	plan, err := h.planner.Plan(aggregate, cmd.Next(), role)
	if err != nil {
		return err
	}

	if err = h.orderClient.ChangeStatus(ctx, cmd.Token(), cmd.OrderID(), plan.Next); err != nil {
		return err
	}

	if plan.RequiresRefund {
		if err = h.paymentClient.Refund(ctx, cmd.Token(), cmd.OrderID()); err != nil {
			h.logger.Error("refund failed after cancellation",
				"orderId", cmd.OrderID().String(),
				"error", err,
			)
		}
	}

	return nil
}
