package services

import (
	"lytefood/internal/core/domain/model/order"
)

// TransitionPlan is the outcome of planning a status change. RequiresRefund
// is set when applying the plan must be followed by a refund request to the
// payment service: only cancellations of orders whose payment was already
// captured qualify. Cancelling a pending order never refunds because nothing
// was charged yet.
type TransitionPlan struct {
	Next           order.Status
	RequiresRefund bool
}

// TransitionPlanner decides whether a status change is allowed and what side
// effects it entails. The check itself is pure; callers apply the plan to
// the order and orchestrate the refund separately, so a refund request can
// never fire for a transition that was refused.
type TransitionPlanner struct{}

// NewTransitionPlanner creates a new TransitionPlanner instance.
func NewTransitionPlanner() TransitionPlanner {
	return TransitionPlanner{}
}

// Plan validates a requested status change for the acting role.
//
// Returns the plan for an allowed transition, or an error wrapping
// order.ErrTransitionNotAllowed when the role-conditional rules refuse it.
// The order is not mutated either way.
func (p TransitionPlanner) Plan(o *order.Order, next order.Status, role order.Role) (TransitionPlan, error) {
	if err := o.Validate(); err != nil {
		return TransitionPlan{}, err
	}

	current := o.Status()
	if !current.CanTransition(next, role) {
		return TransitionPlan{}, order.ErrTransitionNotAllowed
	}

	return TransitionPlan{
		Next:           next,
		RequiresRefund: next == order.Cancelled && current.RefundEligible(),
	}, nil
}
