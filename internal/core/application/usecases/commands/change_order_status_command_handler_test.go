package commands_test

import (
	"errors"
	"testing"
	"time"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("3500.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), 1, price)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item},
		kernel.ZeroMoney(), status, "", nil, time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}

func changeStatusHandler(
	orderClient *MockOrderClient,
	paymentClient *MockPaymentClient,
) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		orderClient, paymentClient, services.NewTransitionPlanner(), discardLogger(),
	)
}

func TestChangeOrderStatusCommandHandler_Handle_HappyPathStep(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Paid)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.InPreparation, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	mock.InOrder(
		orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once(),
		orderClient.On("ChangeStatus", ctx, "tok", aggregate.ID(), order.InPreparation).Return(nil).Once(),
	)

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderClient.AssertExpectations(t)
	paymentClient.AssertNotCalled(t, "Refund")
}

func TestChangeOrderStatusCommandHandler_Handle_CancelPaidRefunds(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Paid)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.Cancelled, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	mock.InOrder(
		orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once(),
		orderClient.On("ChangeStatus", ctx, "tok", aggregate.ID(), order.Cancelled).Return(nil).Once(),
		paymentClient.On("Refund", ctx, "tok", aggregate.ID()).Return(nil).Once(),
	)

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderClient.AssertExpectations(t)
	paymentClient.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelPendingSkipsRefund(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Pending)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.Cancelled, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	mock.InOrder(
		orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once(),
		orderClient.On("ChangeStatus", ctx, "tok", aggregate.ID(), order.Cancelled).Return(nil).Once(),
	)

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderClient.AssertExpectations(t)
	paymentClient.AssertNotCalled(t, "Refund")
}

func TestChangeOrderStatusCommandHandler_Handle_RefusedTransitionNeverHitsWire(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Pending)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.EnRoute, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once()

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	orderClient.AssertNotCalled(t, "ChangeStatus")
	paymentClient.AssertNotCalled(t, "Refund")
}

func TestChangeOrderStatusCommandHandler_Handle_RefusedStatusChangeSkipsRefund(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.Paid)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.Cancelled, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	mock.InOrder(
		orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once(),
		orderClient.On("ChangeStatus", ctx, "tok", aggregate.ID(), order.Cancelled).
			Return(errors.New("409")).Once(),
	)

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	paymentClient.AssertNotCalled(t, "Refund")
}

func TestChangeOrderStatusCommandHandler_Handle_RefundFailureDoesNotRollBack(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.EnRoute)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.Cancelled, session.Roles{Admin: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	paymentClient := new(MockPaymentClient)
	mock.InOrder(
		orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once(),
		orderClient.On("ChangeStatus", ctx, "tok", aggregate.ID(), order.Cancelled).Return(nil).Once(),
		paymentClient.On("Refund", ctx, "tok", aggregate.ID()).Return(errors.New("payment down")).Once(),
	)

	h := changeStatusHandler(orderClient, paymentClient)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderClient.AssertExpectations(t)
	paymentClient.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CourierCannotCancel(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.EnRoute)
	cmd, _ := commands.NewChangeOrderStatusCommand(
		aggregate.ID(), order.Cancelled, session.Roles{Courier: true}, "tok",
	)

	orderClient := new(MockOrderClient)
	orderClient.On("Get", ctx, "tok", aggregate.ID()).Return(aggregate, nil).Once()

	h := changeStatusHandler(orderClient, new(MockPaymentClient))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	orderClient.AssertNotCalled(t, "ChangeStatus")
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	h := changeStatusHandler(new(MockOrderClient), new(MockPaymentClient))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
