package order

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTransitionNotAllowed is returned when the acting role may not move the
	// order to the requested status.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed for this role")

	// ErrOrderHasNoItems is returned when an order is constructed without items.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// maxItemQuantity bounds a single cart/order line. Matches the order service
// contract.
const maxItemQuantity = 99

// Item is one line of an order: a reference to a menu item, the ordered
// quantity, and the unit price at the time the order was placed.
type Item struct {
	menuID    kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
func NewItem(menuID kernel.UUID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return Item{
		menuID:    menuID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// MenuID returns the referenced menu item.
func (i Item) MenuID() kernel.UUID { return i.menuID }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price per unit at order time.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money { return i.unitPrice.MulQuantity(i.quantity) }

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(errors.New("Item must be created via NewItem"))
}

// Order is the client-side representation of an order owned by the external
// order service. It is referenced, not owned: this service renders it, runs
// the pure transition checks on it, and asks the order service to apply any
// approved change.
//
// Invariants:
//   - valid unique identifier
//   - at least one item; total equals the sum of line subtotals at creation
//   - status changes go through ChangeStatus, which enforces the
//     role-conditional transition rules
//
// Orders reconstructed from the wire may carry a status code outside the
// known enumeration; such orders render fine and simply permit no
// transitions.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []Item
	total           kernel.Money
	status          Status
	deliveryAddress string
	courierID       *kernel.UUID
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new pending order from validated items. The total is
// computed from the line subtotals. Used at checkout before the order is
// submitted to the order service.
func NewOrder(id, customerID kernel.UUID, items []Item, deliveryAddress string, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Subtotal())
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		items:           append([]Item(nil), items...),
		total:           total,
		status:          Pending,
		deliveryAddress: deliveryAddress,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order received from the order service.
// The status is kept verbatim, including codes outside the known
// enumeration, and the total is trusted as reported rather than recomputed:
// the backend owns the pricing.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	deliveryAddress string,
	courierID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		items:           append([]Item(nil), items...),
		total:           total,
		status:          status,
		deliveryAddress: deliveryAddress,
		courierID:       courierID,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the ordering user's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns the order lines.
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

// Total returns the order total as reported by the order service.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// Courier returns the assigned courier's ID, or nil if unassigned.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ChangeStatus moves the order to next on behalf of the acting role.
// The transition must appear in the role's allowed set; everything else,
// including any transition out of an unknown status, is rejected with
// ErrTransitionNotAllowed.
func (o *Order) ChangeStatus(next Status, role Role) error {
	if !o.status.CanTransition(next, role) {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrTransitionNotAllowed)
	}

	o.status = next
	return nil
}

// Claim assigns a courier and moves the order en route. Only ready orders
// can be claimed.
func (o *Order) Claim(courierID kernel.UUID, role Role) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if err := o.ChangeStatus(EnRoute, role); err != nil {
		return err
	}

	o.courierID = &courierID
	return nil
}
