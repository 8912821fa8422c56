package commands_test

import (
	"context"
	"io"
	"log/slog"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/menu"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, id kernel.UUID, user *session.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*session.User)
	return user, args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	aggregate, _ := args.Get(0).(*cart.Cart)
	return aggregate, args.Error(1)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockAuthClient struct{ mock.Mock }

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*session.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*session.User)
	return user, args.Error(1)
}

func (m *MockAuthClient) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockMenuClient struct{ mock.Mock }

func (m *MockMenuClient) GetMenu(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]menu.Item)
	return items, args.Error(1)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) Create(ctx context.Context, token string, aggregate *order.Order) (kernel.UUID, error) {
	args := m.Called(ctx, token, aggregate)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockOrderClient) Get(ctx context.Context, token string, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, token, id)
	aggregate, _ := args.Get(0).(*order.Order)
	return aggregate, args.Error(1)
}

func (m *MockOrderClient) GetByCustomer(
	ctx context.Context,
	token string,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, token, customerID)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderClient) GetByStatuses(
	ctx context.Context,
	token string,
	statuses ...order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, token, statuses)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderClient) ChangeStatus(ctx context.Context, token string, id kernel.UUID, status order.Status) error {
	args := m.Called(ctx, token, id, status)
	return args.Error(0)
}

func (m *MockOrderClient) AssignCourier(ctx context.Context, token string, id, courierID kernel.UUID) error {
	args := m.Called(ctx, token, id, courierID)
	return args.Error(0)
}

type MockPaymentClient struct{ mock.Mock }

func (m *MockPaymentClient) InitiatePayment(ctx context.Context, token string, orderID kernel.UUID) (string, error) {
	args := m.Called(ctx, token, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentClient) Refund(ctx context.Context, token string, orderID kernel.UUID) error {
	args := m.Called(ctx, token, orderID)
	return args.Error(0)
}

type MockCourierBoardCache struct{ mock.Mock }

func (m *MockCourierBoardCache) Set(board ports.CourierBoard) {
	m.Called(board)
}

func (m *MockCourierBoardCache) Get() (ports.CourierBoard, bool) {
	args := m.Called()
	return args.Get(0).(ports.CourierBoard), args.Bool(1)
}
