package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuRepository is a mock implementation of repository.MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func NewMockMenuRepository(t *testing.T) *MockMenuRepository {
	m := &MockMenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockMenuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Menu)
	}

	return r0, ret.Error(1)
}

func (_m *MockMenuRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status entity.LifecycleStatus) ([]*entity.Menu, error) {
	ret := _m.Called(ctx, restaurantID, status)

	var r0 []*entity.Menu
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Menu)
	}

	return r0, ret.Error(1)
}

func (_m *MockMenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	ret := _m.Called(ctx, menu)

	return ret.Error(0)
}

func (_m *MockMenuRepository) Update(ctx context.Context, menu *entity.Menu) error {
	ret := _m.Called(ctx, menu)

	return ret.Error(0)
}

func (_m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// MockMenuRepositoryExpecter provides the fluent expectation API.
type MockMenuRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockMenuRepository) EXPECT() *MockMenuRepositoryExpecter {
	return &MockMenuRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockMenuRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockMenuRepositoryExpecter) ListByRestaurant(ctx any, restaurantID any, status any) *mock.Call {
	return _e.mock.On("ListByRestaurant", ctx, restaurantID, status)
}

func (_e *MockMenuRepositoryExpecter) Create(ctx any, menu any) *mock.Call {
	return _e.mock.On("Create", ctx, menu)
}

func (_e *MockMenuRepositoryExpecter) Update(ctx any, menu any) *mock.Call {
	return _e.mock.On("Update", ctx, menu)
}

func (_e *MockMenuRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// MockMenuItemRepository is a mock implementation of repository.MenuItemRepository.
type MockMenuItemRepository struct {
	mock.Mock
}

func NewMockMenuItemRepository(t *testing.T) *MockMenuItemRepository {
	m := &MockMenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockMenuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MockMenuItemRepository) ListByMenu(ctx context.Context, menuID uuid.UUID, status entity.LifecycleStatus) ([]*entity.MenuItem, error) {
	ret := _m.Called(ctx, menuID, status)

	var r0 []*entity.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.MenuItem)
	}

	return r0, ret.Error(1)
}

func (_m *MockMenuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MockMenuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	ret := _m.Called(ctx, item)

	return ret.Error(0)
}

func (_m *MockMenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// MockMenuItemRepositoryExpecter provides the fluent expectation API.
type MockMenuItemRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockMenuItemRepository) EXPECT() *MockMenuItemRepositoryExpecter {
	return &MockMenuItemRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockMenuItemRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockMenuItemRepositoryExpecter) ListByMenu(ctx any, menuID any, status any) *mock.Call {
	return _e.mock.On("ListByMenu", ctx, menuID, status)
}

func (_e *MockMenuItemRepositoryExpecter) Create(ctx any, item any) *mock.Call {
	return _e.mock.On("Create", ctx, item)
}

func (_e *MockMenuItemRepositoryExpecter) Update(ctx any, item any) *mock.Call {
	return _e.mock.On("Update", ctx, item)
}

func (_e *MockMenuItemRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}
