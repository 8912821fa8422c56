package ports

import (
	"context"

	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Each customer has at most one cart.
type CartRepository interface {
	// Add persists a new cart aggregate.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart owned by a customer.
	// Returns an error wrapping errs.ErrObjectNotFound when the customer
	// has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)
}
