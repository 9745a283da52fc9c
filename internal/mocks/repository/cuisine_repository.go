package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCuisineRepository is a mock implementation of repository.CuisineRepository.
type MockCuisineRepository struct {
	mock.Mock
}

func NewMockCuisineRepository(t *testing.T) *MockCuisineRepository {
	m := &MockCuisineRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockCuisineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cuisine, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Cuisine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Cuisine)
	}

	return r0, ret.Error(1)
}

func (_m *MockCuisineRepository) List(ctx context.Context) ([]*entity.Cuisine, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Cuisine
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Cuisine)
	}

	return r0, ret.Error(1)
}

func (_m *MockCuisineRepository) Create(ctx context.Context, cuisine *entity.Cuisine) error {
	ret := _m.Called(ctx, cuisine)

	return ret.Error(0)
}

// MockCuisineRepositoryExpecter provides the fluent expectation API.
type MockCuisineRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockCuisineRepository) EXPECT() *MockCuisineRepositoryExpecter {
	return &MockCuisineRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockCuisineRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockCuisineRepositoryExpecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_e *MockCuisineRepositoryExpecter) Create(ctx any, cuisine any) *mock.Call {
	return _e.mock.On("Create", ctx, cuisine)
}
