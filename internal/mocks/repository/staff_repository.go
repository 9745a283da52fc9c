package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStaffRepository is a mock implementation of repository.StaffRepository.
type MockStaffRepository struct {
	mock.Mock
}

func NewMockStaffRepository(t *testing.T) *MockStaffRepository {
	m := &MockStaffRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockStaffRepository) FindByUserAndRestaurant(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.RestaurantStaff, error) {
	ret := _m.Called(ctx, userID, restaurantID)

	var r0 *entity.RestaurantStaff
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.RestaurantStaff)
	}

	return r0, ret.Error(1)
}

func (_m *MockStaffRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RestaurantStaff, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.RestaurantStaff
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.RestaurantStaff)
	}

	return r0, ret.Error(1)
}

func (_m *MockStaffRepository) Create(ctx context.Context, staff *entity.RestaurantStaff) error {
	ret := _m.Called(ctx, staff)

	return ret.Error(0)
}

func (_m *MockStaffRepository) Update(ctx context.Context, staff *entity.RestaurantStaff) error {
	ret := _m.Called(ctx, staff)

	return ret.Error(0)
}

// MockStaffRepositoryExpecter provides the fluent expectation API.
type MockStaffRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockStaffRepository) EXPECT() *MockStaffRepositoryExpecter {
	return &MockStaffRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockStaffRepositoryExpecter) FindByUserAndRestaurant(ctx any, userID any, restaurantID any) *mock.Call {
	return _e.mock.On("FindByUserAndRestaurant", ctx, userID, restaurantID)
}

func (_e *MockStaffRepositoryExpecter) FindByUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("FindByUser", ctx, userID)
}

func (_e *MockStaffRepositoryExpecter) Create(ctx any, staff any) *mock.Call {
	return _e.mock.On("Create", ctx, staff)
}

func (_e *MockStaffRepositoryExpecter) Update(ctx any, staff any) *mock.Call {
	return _e.mock.On("Update", ctx, staff)
}
