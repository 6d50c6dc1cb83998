package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/commands"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/customer"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (customer.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(customer.Customer), args.Error(1)
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

var errMockFailure = errors.New("mock failure")

func newTestSession(t *testing.T, role staff.Role) staff.Session {
	t.Helper()

	profile, err := staff.NewProfile(kernel.NewUUID(), "jane", "jane@shop.example", role, staff.Active)
	require.NoError(t, err)

	session, err := staff.NewSession(profile)
	require.NoError(t, err)

	return session
}

func newTestDraft(t *testing.T, customerID kernel.UUID) order.Draft {
	t.Helper()

	item, err := catalog.NewItem(
		kernel.NewUUID(), catalog.Book, "Clean Code",
		decimal.RequireFromString("45.99"), 25)
	require.NoError(t, err)

	builder := order.NewBuilder()
	require.NoError(t, builder.SelectCustomer(customerID))
	require.NoError(t, builder.AddLine(item, 2))

	draft, err := builder.Submit()
	require.NoError(t, err)

	return draft
}

func newTestCustomer(t *testing.T, id kernel.UUID) customer.Customer {
	t.Helper()

	buyer, err := customer.NewCustomer(id, "John Smith", "john@example.com", "")
	require.NoError(t, err)

	return buyer
}

func newPendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	session := newTestSession(t, staff.Salesman)
	draft := newTestDraft(t, kernel.NewUUID())

	aggregate, err := order.NewOrder(id, draft, "John Smith",
		session.UserID(), session.Username(), time.Now())
	require.NoError(t, err)

	return aggregate
}
