// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"savor/internal/domain/entity"

	"github.com/google/uuid"
)

// Principal identifies the authenticated caller of a request, as carried
// by the access token. The role is re-checked against the store for
// operations that require it.
type Principal struct {
	UserID uuid.UUID
	Role   entity.Role
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Username is optional; when empty it is derived from the email local part.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"omitempty,min=3,max=150"`
	FirstName   string `json:"first_name" validate:"omitempty,max=150"`
	LastName    string `json:"last_name" validate:"omitempty,max=150"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=12"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a customer to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// StaffLoginInput defines the data required for a staff login. The
// restaurant scopes the staff record whose last-login is stamped.
type StaffLoginInput struct {
	Email        string    `json:"email" validate:"required,email"`
	Password     string    `json:"password" validate:"required"`
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// UpdateProfileInput carries a partial profile patch. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name" validate:"omitempty,max=150"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=12"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	StaffLogin(ctx context.Context, input *StaffLoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error
}
