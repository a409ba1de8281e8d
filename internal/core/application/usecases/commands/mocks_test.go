package commands_test

import (
	"context"
	"testing"
	"time"

	"fuelsettlement/internal/core/application/usecases/commands"
	"fuelsettlement/internal/core/domain/model/escrow"
	"fuelsettlement/internal/core/domain/model/kernel"
	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// restoreTestOrder rebuilds a stored order of 5000 litres at unit price 150,
// total 750000.
func restoreTestOrder(
	t *testing.T,
	id int64,
	buyer, supplier kernel.UUID,
	status order.Status,
) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(150)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, buyer, supplier, 5000, price, status,
		status == order.Delivered || status == order.Settled, time.Now().UTC())
	require.NoError(t, err)
	return o
}

// restoreTestEscrow rebuilds an unreleased escrow holding the test order total.
func restoreTestEscrow(t *testing.T, orderID int64) *escrow.Escrow {
	t.Helper()

	held, err := kernel.NewMoney(750_000)
	require.NoError(t, err)

	e, err := escrow.RestoreEscrow(orderID, held, kernel.ZeroMoney(), escrow.NotReleased)
	require.NoError(t, err)
	return e
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, fromStatus order.Status) error {
	args := m.Called(ctx, o, fromStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInDeliveredStatus(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockEscrowRepository struct{ mock.Mock }

func (m *MockEscrowRepository) Add(ctx context.Context, e *escrow.Escrow) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEscrowRepository) Update(ctx context.Context, e *escrow.Escrow) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEscrowRepository) Get(ctx context.Context, orderID int64) (*escrow.Escrow, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

func (m *MockEscrowRepository) GetForUpdate(ctx context.Context, orderID int64) (*escrow.Escrow, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*escrow.Escrow), args.Error(1)
}

type MockFundGateway struct{ mock.Mock }

func (m *MockFundGateway) Capture(ctx context.Context, orderID int64, from kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, from, amount)
	return args.Error(0)
}

func (m *MockFundGateway) Payout(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, to, amount)
	return args.Error(0)
}

func (m *MockFundGateway) Refund(ctx context.Context, orderID int64, to kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, to, amount)
	return args.Error(0)
}

type MockEventLog struct{ mock.Mock }

func (m *MockEventLog) Append(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSettlementUoW struct{ mock.Mock }

func (m *MockSettlementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSettlementUoW) EscrowRepository() ports.EscrowRepository {
	args := m.Called()
	return args.Get(0).(ports.EscrowRepository)
}

func (m *MockSettlementUoW) FundGateway() ports.FundGateway {
	args := m.Called()
	return args.Get(0).(ports.FundGateway)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
