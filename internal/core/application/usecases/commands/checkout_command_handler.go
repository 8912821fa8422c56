package commands

import (
	"context"
	"time"

	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/ports"
)

// CheckoutResult is the outcome of a successful checkout: the order as
// registered by the order service and the URL the customer is sent to for
// payment.
type CheckoutResult struct {
	OrderID    kernel.UUID
	PaymentURL string
}

// CheckoutCommandHandler turns the customer's cart into a pending order.
// The order is submitted to the order service first; only once the payment
// flow is initiated is the local cart cleared, so a failed submission
// leaves the cart intact for a retry.
type CheckoutCommandHandler struct {
	uowFactory    CartUoWFactory
	orderClient   ports.OrderClient
	paymentClient ports.PaymentClient
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CartUoWFactory,
	orderClient ports.OrderClient,
	paymentClient ports.PaymentClient,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:    uowFactory,
		orderClient:   orderClient,
		paymentClient: paymentClient,
	}
}

// Handle processes the checkout command.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if aggregate.IsEmpty() {
		return CheckoutResult{}, cart.ErrCartIsEmpty
	}

	newOrder, err := h.buildOrder(cmd, aggregate)
	if err != nil {
		return CheckoutResult{}, err
	}

	orderID, err := h.orderClient.Create(ctx, cmd.Token(), newOrder)
	if err != nil {
		return CheckoutResult{}, err
	}

	paymentURL, err := h.paymentClient.InitiatePayment(ctx, cmd.Token(), orderID)
	if err != nil {
		return CheckoutResult{}, err
	}

	aggregate.Clear(time.Now())
	if err = cartRepo.Update(ctx, aggregate); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{OrderID: orderID, PaymentURL: paymentURL}, nil
}

func (h *CheckoutCommandHandler) buildOrder(cmd CheckoutCommand, aggregate *cart.Cart) (*order.Order, error) {
	lines := aggregate.Items()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.MenuID(), line.Quantity(), line.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), items, cmd.DeliveryAddress(), time.Now())
}
