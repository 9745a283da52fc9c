// Package repository provides hand-maintained testify mocks for the
// persistence interfaces, exposing the same EXPECT-style API the service
// tests are written against.
package repository

import (
	"context"
	"testing"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted
// when the test finishes.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

// MockUserRepositoryExpecter provides the fluent expectation API.
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &_m.Mock}
}

func (_e *MockUserRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockUserRepositoryExpecter) FindByEmail(ctx any, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_e *MockUserRepositoryExpecter) FindByUsername(ctx any, username any) *mock.Call {
	return _e.mock.On("FindByUsername", ctx, username)
}

func (_e *MockUserRepositoryExpecter) CountUsers(ctx any) *mock.Call {
	return _e.mock.On("CountUsers", ctx)
}

func (_e *MockUserRepositoryExpecter) Create(ctx any, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_e *MockUserRepositoryExpecter) Update(ctx any, user any) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}
