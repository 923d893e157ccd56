package commands_test

import (
	"context"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/account"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllWithoutTrackingNumber(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRegistry struct{ mock.Mock }

func (m *MockUserRegistry) GetRole(ctx context.Context, userID int64) (account.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(account.Role), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Exists(ctx context.Context, productID int64) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers use.
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

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) UserRegistry() ports.UserRegistry {
	args := m.Called()
	return args.Get(0).(ports.UserRegistry)
}

func (m *MockUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

type MockCreateUoWFactory struct{ mock.Mock }

func (m *MockCreateUoWFactory) Create() commands.CreateShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateShipmentUoW)
}

type MockUpdateUoWFactory struct{ mock.Mock }

func (m *MockUpdateUoWFactory) Create() commands.UpdateShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.UpdateShipmentUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func mustPrincipal(t *testing.T, userID int64, role account.Role) account.Principal {
	t.Helper()
	p, err := account.NewPrincipal(userID, role)
	require.NoError(t, err)
	return p
}

func mustItems(t *testing.T, pairs ...[2]int64) []shipment.Item {
	t.Helper()
	items := make([]shipment.Item, 0, len(pairs))
	for _, p := range pairs {
		item, err := shipment.NewItem(p[0], int(p[1]))
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}
