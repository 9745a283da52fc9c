// Package service provides hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"testing"

	"savor/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}

// MockPasswordHasherExpecter provides the fluent expectation API.
type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &_m.Mock}
}

func (_e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_e *MockPasswordHasherExpecter) Check(password any, hash any) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	ret := _m.Called(userID, role)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

func (_m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

// MockTokenServiceExpecter provides the fluent expectation API.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &_m.Mock}
}

func (_e *MockTokenServiceExpecter) GenerateTokens(userID any, role any) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, role)
}

func (_e *MockTokenServiceExpecter) ValidateAccessToken(tokenString any) *mock.Call {
	return _e.mock.On("ValidateAccessToken", tokenString)
}

func (_e *MockTokenServiceExpecter) ValidateRefreshToken(tokenString any) *mock.Call {
	return _e.mock.On("ValidateRefreshToken", tokenString)
}

// MockOrderNumberGenerator is a mock implementation of service.OrderNumberGenerator.
type MockOrderNumberGenerator struct {
	mock.Mock
}

func NewMockOrderNumberGenerator(t *testing.T) *MockOrderNumberGenerator {
	m := &MockOrderNumberGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockOrderNumberGenerator) Generate() (string, error) {
	ret := _m.Called()

	return ret.String(0), ret.Error(1)
}

// MockOrderNumberGeneratorExpecter provides the fluent expectation API.
type MockOrderNumberGeneratorExpecter struct {
	mock *mock.Mock
}

func (_m *MockOrderNumberGenerator) EXPECT() *MockOrderNumberGeneratorExpecter {
	return &MockOrderNumberGeneratorExpecter{mock: &_m.Mock}
}

func (_e *MockOrderNumberGeneratorExpecter) Generate() *mock.Call {
	return _e.mock.On("Generate")
}
