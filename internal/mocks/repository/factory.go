package repository

import (
	"context"
	"testing"

	"savor/internal/domain/repository"
)

// StubFactory is a RepositoryFactory backed by the package's mocks. Tests
// populate only the repositories the code under test touches.
type StubFactory struct {
	Users       *MockUserRepository
	Restaurants *MockRestaurantRepository
	Cuisines    *MockCuisineRepository
	Staff       *MockStaffRepository
	Menus       *MockMenuRepository
	MenuItems   *MockMenuItemRepository
	Orders      *MockOrderRepository
	OrderItems  *MockOrderItemRepository
	Addresses   *MockAddressRepository
}

// NewStubFactory creates a factory with every repository mocked.
func NewStubFactory(t *testing.T) *StubFactory {
	return &StubFactory{
		Users:       NewMockUserRepository(t),
		Restaurants: NewMockRestaurantRepository(t),
		Cuisines:    NewMockCuisineRepository(t),
		Staff:       NewMockStaffRepository(t),
		Menus:       NewMockMenuRepository(t),
		MenuItems:   NewMockMenuItemRepository(t),
		Orders:      NewMockOrderRepository(t),
		OrderItems:  NewMockOrderItemRepository(t),
		Addresses:   NewMockAddressRepository(t),
	}
}

func (f *StubFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *StubFactory) RestaurantRepo() repository.RestaurantRepository { return f.Restaurants }

func (f *StubFactory) CuisineRepo() repository.CuisineRepository { return f.Cuisines }

func (f *StubFactory) StaffRepo() repository.StaffRepository { return f.Staff }

func (f *StubFactory) MenuRepo() repository.MenuRepository { return f.Menus }

func (f *StubFactory) MenuItemRepo() repository.MenuItemRepository { return f.MenuItems }

func (f *StubFactory) OrderRepo() repository.OrderRepository { return f.Orders }

func (f *StubFactory) OrderItemRepo() repository.OrderItemRepository { return f.OrderItems }

func (f *StubFactory) AddressRepo() repository.AddressRepository { return f.Addresses }

// StubTxManager is a TransactionManager that runs the transaction body
// directly against its factory, without any real transaction.
type StubTxManager struct {
	Factory *StubFactory
}

// NewStubTxManager creates a pass-through transaction manager over a fresh
// factory.
func NewStubTxManager(t *testing.T) *StubTxManager {
	return &StubTxManager{Factory: NewStubFactory(t)}
}

func (m *StubTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
