// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/domain/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// usernameCollisionRetries bounds the random-suffix search when the
// derived username is already taken.
const usernameCollisionRetries = 5

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	StaffRepo    repository.StaffRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		staffRepo:    params.StaffRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, input.Email); findErr == nil {
			return domainerrors.ErrConflict.WrapMessage("email already registered")
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		username, usernameErr := srv.resolveUsername(ctx, userRepo, input.Username, input.Email)
		if usernameErr != nil {
			return usernameErr
		}

		newUser := &entity.User{
			Email:        input.Email,
			Username:     username,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hashedPassword,
			Role:         entity.RoleCustomer,
			IsActive:     true,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrConflict.WrapMessage("email or username already registered")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// resolveUsername returns the requested username, or derives one from the
// email local part, disambiguating with a random suffix on collision.
func (srv *userService) resolveUsername(ctx context.Context, userRepo repository.UserRepository, requested, email string) (string, error) {
	if requested != "" {
		if _, err := userRepo.FindByUsername(ctx, requested); err == nil {
			return "", domainerrors.ErrConflict.WrapMessage("username already taken")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(err, "failed to check username uniqueness")
		}

		return requested, nil
	}

	base, _, _ := strings.Cut(email, "@")
	if base == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("email has no local part to derive a username from")
	}
	candidate := base
	for range usernameCollisionRetries {
		_, err := userRepo.FindByUsername(ctx, candidate)
		if errors.Is(err, repository.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check derived username uniqueness")
		}

		suffix, err := randomSuffix()
		if err != nil {
			return "", err
		}
		candidate = base + "_" + suffix
	}

	return "", domainerrors.ErrConflict.WrapMessage("could not derive a unique username")
}

func randomSuffix() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate username suffix")
	}

	return hex.EncodeToString(buf), nil
}

// Login orchestrates the customer login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	loggedInUser, err := srv.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.stampUserLogin(ctx, loggedInUser); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// StaffLogin authenticates a staff member and stamps both the account and
// the staff record for the given restaurant.
func (srv *userService) StaffLogin(ctx context.Context, input *usecase.StaffLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting staff login", slog.String("email", input.Email), slog.Any("restaurantID", input.RestaurantID))

	loggedInUser, err := srv.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Staff login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	now := time.Now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		staffRepo := repoFactory.StaffRepo()
		userRepo := repoFactory.UserRepo()

		staff, findErr := staffRepo.FindByUserAndRestaurant(ctx, loggedInUser.ID, input.RestaurantID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrStaffNotFound) {
				return domainerrors.ErrPermissionDenied.WrapMessage("no staff record for this restaurant")
			}

			return errors.Wrap(findErr, "failed to load staff record")
		}

		staff.LastLoginAt = &now
		if updateErr := staffRepo.Update(ctx, staff); updateErr != nil {
			return errors.Wrap(updateErr, "failed to stamp staff last login")
		}

		loggedInUser.LastLoginAt = &now
		if updateErr := userRepo.Update(ctx, loggedInUser); updateErr != nil {
			return errors.Wrap(updateErr, "failed to stamp user last login")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Staff login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute staff login transaction")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Staff logged in", slog.Any("userID", loggedInUser.ID), slog.Any("restaurantID", input.RestaurantID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// authenticate loads the account by email and checks the password.
// bcrypt runs outside any transaction since it is CPU-bound.
func (srv *userService) authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account by email")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !user.CanLogin() {
		return nil, domainerrors.ErrAccountDisabled.WrapMessage("login refused for deactivated account")
	}

	return user, nil
}

func (srv *userService) stampUserLogin(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.LastLoginAt = &now

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to stamp last login", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to stamp user last login")
	}

	return nil
}

// GetProfile retrieves the caller's account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies a partial patch to the caller's account.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("account not found")
			}

			return errors.Wrap(findErr, "failed to load account for update")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.PhoneNumber != nil {
			user.PhoneNumber = *input.PhoneNumber
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// Deactivate clears the account's active flag. The row is kept so order
// history stays attributable.
func (srv *userService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("account not found")
			}

			return errors.Wrap(findErr, "failed to load account for deactivation")
		}

		user.IsActive = false
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to deactivate account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Deactivation failed", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute deactivation transaction")
	}

	srv.log(ctx).Info("Account deactivated", slog.Any("userID", userID))

	return nil
}
