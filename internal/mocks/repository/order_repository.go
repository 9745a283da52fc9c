package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderRepository) FindCartForUpdate(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, userID, restaurantID)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderRepository) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []*entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderRepository) ListPaidByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

// MockOrderRepositoryExpecter provides the fluent expectation API.
type MockOrderRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepositoryExpecter {
	return &MockOrderRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockOrderRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockOrderRepositoryExpecter) FindCartForUpdate(ctx any, userID any, restaurantID any) *mock.Call {
	return _e.mock.On("FindCartForUpdate", ctx, userID, restaurantID)
}

func (_e *MockOrderRepositoryExpecter) ListByUserAndStatus(ctx any, userID any, status any) *mock.Call {
	return _e.mock.On("ListByUserAndStatus", ctx, userID, status)
}

func (_e *MockOrderRepositoryExpecter) ListPaidByUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("ListPaidByUser", ctx, userID)
}

func (_e *MockOrderRepositoryExpecter) Create(ctx any, order any) *mock.Call {
	return _e.mock.On("Create", ctx, order)
}

func (_e *MockOrderRepositoryExpecter) Update(ctx any, order any) *mock.Call {
	return _e.mock.On("Update", ctx, order)
}

// MockOrderItemRepository is a mock implementation of repository.OrderItemRepository.
type MockOrderItemRepository struct {
	mock.Mock
}

func NewMockOrderItemRepository(t *testing.T) *MockOrderItemRepository {
	m := &MockOrderItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockOrderItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.OrderItem)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []*entity.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.OrderItem)
	}

	return r0, ret.Error(1)
}

func (_m *MockOrderItemRepository) Upsert(ctx context.Context, item *entity.OrderItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MockOrderItemRepository) Update(ctx context.Context, item *entity.OrderItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MockOrderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// MockOrderItemRepositoryExpecter provides the fluent expectation API.
type MockOrderItemRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockOrderItemRepository) EXPECT() *MockOrderItemRepositoryExpecter {
	return &MockOrderItemRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockOrderItemRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockOrderItemRepositoryExpecter) ListByOrder(ctx any, orderID any) *mock.Call {
	return _e.mock.On("ListByOrder", ctx, orderID)
}

func (_e *MockOrderItemRepositoryExpecter) Upsert(ctx any, item any) *mock.Call {
	return _e.mock.On("Upsert", ctx, item)
}

func (_e *MockOrderItemRepositoryExpecter) Update(ctx any, item any) *mock.Call {
	return _e.mock.On("Update", ctx, item)
}

func (_e *MockOrderItemRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}
