package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAddressRepository is a mock implementation of repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func NewMockAddressRepository(t *testing.T) *MockAddressRepository {
	m := &MockAddressRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderAddress, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.OrderAddress
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.OrderAddress)
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.OrderAddress, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.OrderAddress
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.OrderAddress)
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) CountSavedByUserForUpdate(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockAddressRepository) Create(ctx context.Context, address *entity.OrderAddress) error {
	ret := _m.Called(ctx, address)

	return ret.Error(0)
}

func (_m *MockAddressRepository) Update(ctx context.Context, address *entity.OrderAddress) error {
	ret := _m.Called(ctx, address)

	return ret.Error(0)
}

// MockAddressRepositoryExpecter provides the fluent expectation API.
type MockAddressRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockAddressRepository) EXPECT() *MockAddressRepositoryExpecter {
	return &MockAddressRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockAddressRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockAddressRepositoryExpecter) ListSavedByUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("ListSavedByUser", ctx, userID)
}

func (_e *MockAddressRepositoryExpecter) CountSavedByUserForUpdate(ctx any, userID any) *mock.Call {
	return _e.mock.On("CountSavedByUserForUpdate", ctx, userID)
}

func (_e *MockAddressRepositoryExpecter) Create(ctx any, address any) *mock.Call {
	return _e.mock.On("Create", ctx, address)
}

func (_e *MockAddressRepositoryExpecter) Update(ctx any, address any) *mock.Call {
	return _e.mock.On("Update", ctx, address)
}
