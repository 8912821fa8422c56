// Package cart contains the shopping cart aggregate. Unlike orders, carts are
// owned by this service: they live in local storage until checkout turns them
// into an order submitted to the order service.
package cart

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart")

	// ErrItemNotInCart is returned when removing a menu item the cart does not hold.
	ErrItemNotInCart = errs.NewObjectNotFoundError("menuId", nil)

	// ErrCartIsEmpty is returned when checking out a cart with no items.
	ErrCartIsEmpty = errors.New("cart has no items")
)

// maxLineQuantity bounds a single cart line, matching the order service contract.
const maxLineQuantity = 99

// Item is one cart line. The name and unit price are captured from the menu
// at the moment the item is added so the cart renders without refetching.
type Item struct {
	menuID    kernel.UUID
	name      string
	quantity  int
	unitPrice kernel.Money
}

// NewItem creates a validated cart line.
func NewItem(menuID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if quantity < 1 || quantity > maxLineQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return Item{
		menuID:    menuID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// MenuID returns the referenced menu item.
func (i Item) MenuID() kernel.UUID { return i.menuID }

// Name returns the menu item name captured at add time.
func (i Item) Name() string { return i.name }

// Quantity returns the line quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price captured at add time.
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() kernel.Money { return i.unitPrice.MulQuantity(i.quantity) }

// Cart accumulates menu items for one customer between visits. Adding an
// item already in the cart merges quantities; lines never exceed the order
// service's per-line quantity cap.
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []Item
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for a customer.
func NewCart(id, customerID kernel.UUID, now time.Time) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:         id,
		customerID: customerID,
		updatedAt:  now,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCart reconstructs a cart from persistence.
func RestoreCart(id, customerID kernel.UUID, items []Item, updatedAt time.Time) (*Cart, error) {
	if err := errors.Join(id.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	return &Cart{
		id:         id,
		customerID: customerID,
		items:      append([]Item(nil), items...),
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// ID returns the cart identifier.
func (c *Cart) ID() kernel.UUID { return c.id }

// CustomerID returns the owning customer.
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

// Items returns the cart lines.
func (c *Cart) Items() []Item { return append([]Item(nil), c.items...) }

// UpdatedAt returns the last mutation time.
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Total returns the sum of all line subtotals.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddItem puts a menu item in the cart. If a line for the same menu item
// already exists the quantities are merged; the merged quantity must stay
// within the per-line cap.
func (c *Cart) AddItem(item Item, now time.Time) error {
	for i, existing := range c.items {
		if !existing.menuID.IsEqual(item.menuID) {
			continue
		}

		merged := existing.quantity + item.quantity
		if merged > maxLineQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", merged, 1, maxLineQuantity)
		}
		c.items[i].quantity = merged
		c.updatedAt = now
		return nil
	}

	c.items = append(c.items, item)
	c.updatedAt = now
	return nil
}

// RemoveItem drops the line for a menu item entirely.
func (c *Cart) RemoveItem(menuID kernel.UUID, now time.Time) error {
	for i, existing := range c.items {
		if existing.menuID.IsEqual(menuID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.updatedAt = now
			return nil
		}
	}
	return ErrItemNotInCart
}

// Clear empties the cart after a successful checkout.
func (c *Cart) Clear(now time.Time) {
	c.items = nil
	c.updatedAt = now
}
