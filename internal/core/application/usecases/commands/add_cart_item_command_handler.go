package commands

import (
	"context"
	"errors"
	"time"

	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// AddCartItemCommandHandler puts a menu item in the customer's cart,
// creating the cart on first use. The item's name and price are captured
// from the menu service at add time so the cart keeps rendering even if
// the menu changes afterwards.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	menuClient ports.MenuClient
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, menuClient ports.MenuClient) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		menuClient: menuClient,
	}
}

// Handle processes the cart addition command.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.lookupMenuItem(ctx, cmd.MenuItemID(), cmd.Quantity())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	now := time.Now()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	switch {
	case err == nil:
		if err = aggregate.AddItem(item, now); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		if aggregate, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID(), now); err != nil {
			return err
		}
		if err = aggregate.AddItem(item, now); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}

// lookupMenuItem resolves the menu item and builds the cart line from its
// current name and price.
func (h *AddCartItemCommandHandler) lookupMenuItem(
	ctx context.Context,
	menuItemID kernel.UUID,
	quantity int,
) (cart.Item, error) {
	items, err := h.menuClient.GetMenu(ctx)
	if err != nil {
		return cart.Item{}, err
	}

	for _, item := range items {
		if !item.ID.IsEqual(menuItemID) {
			continue
		}
		if !item.Available {
			return cart.Item{}, errs.NewValueIsInvalidError("menuItemId")
		}
		return cart.NewItem(item.ID, item.Name, quantity, item.Price)
	}

	return cart.Item{}, errs.NewObjectNotFoundError("menuItemId", menuItemID.String())
}
