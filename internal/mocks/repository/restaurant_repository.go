package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"
	"savor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a mock implementation of repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

func NewMockRestaurantRepository(t *testing.T) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_m *MockRestaurantRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_m *MockRestaurantRepository) ListActive(ctx context.Context) ([]*entity.Restaurant, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_m *MockRestaurantRepository) ListByCuisine(ctx context.Context, cuisineID uuid.UUID) ([]*entity.Restaurant, error) {
	ret := _m.Called(ctx, cuisineID)

	var r0 []*entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_m *MockRestaurantRepository) Filter(ctx context.Context, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	return r0, ret.Error(1)
}

func (_m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	return ret.Error(0)
}

func (_m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	return ret.Error(0)
}

// MockRestaurantRepositoryExpecter provides the fluent expectation API.
type MockRestaurantRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockRestaurantRepository) EXPECT() *MockRestaurantRepositoryExpecter {
	return &MockRestaurantRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockRestaurantRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockRestaurantRepositoryExpecter) FindActiveByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindActiveByID", ctx, id)
}

func (_e *MockRestaurantRepositoryExpecter) ListActive(ctx any) *mock.Call {
	return _e.mock.On("ListActive", ctx)
}

func (_e *MockRestaurantRepositoryExpecter) ListByCuisine(ctx any, cuisineID any) *mock.Call {
	return _e.mock.On("ListByCuisine", ctx, cuisineID)
}

func (_e *MockRestaurantRepositoryExpecter) Filter(ctx any, filter any) *mock.Call {
	return _e.mock.On("Filter", ctx, filter)
}

func (_e *MockRestaurantRepositoryExpecter) Create(ctx any, restaurant any) *mock.Call {
	return _e.mock.On("Create", ctx, restaurant)
}

func (_e *MockRestaurantRepositoryExpecter) Update(ctx any, restaurant any) *mock.Call {
	return _e.mock.On("Update", ctx, restaurant)
}
