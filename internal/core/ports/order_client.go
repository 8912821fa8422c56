package ports

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
)

// OrderClient talks to the external order service, which owns the orders.
// All calls carry the signed-in user's bearer token; authorization is
// ultimately enforced server-side, the local transition rules only decide
// what to attempt.
type OrderClient interface {
	// Create submits a new order and returns the identifier assigned by the
	// order service.
	Create(ctx context.Context, token string, aggregate *order.Order) (kernel.UUID, error)

	// Get retrieves one order by identifier.
	Get(ctx context.Context, token string, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by a customer, newest first.
	GetByCustomer(ctx context.Context, token string, customerID kernel.UUID) ([]*order.Order, error)

	// GetByStatuses retrieves all orders currently in any of the given
	// statuses. Used by the admin dashboard and the courier board.
	GetByStatuses(ctx context.Context, token string, statuses ...order.Status) ([]*order.Order, error)

	// ChangeStatus asks the order service to move an order to a new status.
	ChangeStatus(ctx context.Context, token string, id kernel.UUID, status order.Status) error

	// AssignCourier records the courier on an order when it is claimed.
	AssignCourier(ctx context.Context, token string, id, courierID kernel.UUID) error
}
