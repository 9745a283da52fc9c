package impl

import (
	"context"
	"strings"
	"testing"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	mockSvc "savor/internal/mocks/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	tx       *mockRepo.StubTxManager
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
	service  usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	tx := mockRepo.NewStubTxManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    tx,
		UserRepo:     tx.Factory.Users,
		StaffRepo:    tx.Factory.Staff,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return &userServiceFixture{tx: tx, hasher: hasher, tokenSvc: tokenSvc, service: service}
}

func TestUserService_Register_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!pass").Return("hashed", nil)
	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "diner@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		FindByUsername(ctx, "diner42").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "diner@example.com",
		Username: "diner42",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "diner42", output.User.Username)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.True(t, output.User.IsActive)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!pass").Return("hashed", nil)
	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "diner@example.com").
		Return(&entity.User{ID: uuid.New()}, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "diner@example.com",
		Password: "s3cret!pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestUserService_Register_DerivesUsernameFromEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!pass").Return("hashed", nil)
	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "diner@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		FindByUsername(ctx, "diner").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "diner@example.com",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "diner", output.User.Username)
}

func TestUserService_Register_DerivedUsernameCollision(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!pass").Return("hashed", nil)
	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "diner@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		FindByUsername(ctx, "diner").
		Return(&entity.User{ID: uuid.New()}, nil)
	f.tx.Factory.Users.EXPECT().
		FindByUsername(ctx, mock.MatchedBy(func(candidate string) bool {
			return strings.HasPrefix(candidate, "diner_")
		})).
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "diner@example.com",
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.User.Username, "diner_"),
		"got username %q", output.User.Username)
}

func TestUserService_Register_TakenUsername(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("s3cret!pass").Return("hashed", nil)
	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "diner@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.tx.Factory.Users.EXPECT().
		FindByUsername(ctx, "diner42").
		Return(&entity.User{ID: uuid.New()}, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "diner@example.com",
		Username: "diner42",
		Password: "s3cret!pass",
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestUserService_Login_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "diner@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	f.hasher.EXPECT().Check("s3cret!pass", "hashed").Return(true)
	f.tx.Factory.Users.EXPECT().
		Update(ctx, user).
		Return(nil)
	f.tokenSvc.EXPECT().
		GenerateTokens(user.ID, "customer").
		Return("access", "refresh", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.NotNil(t, user.LastLoginAt)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "diner@example.com", PasswordHash: "hashed", IsActive: true}

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "diner@example.com", PasswordHash: "hashed", IsActive: false}

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	f.hasher.EXPECT().Check("s3cret!pass", "hashed").Return(true)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "s3cret!pass"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_StaffLogin_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "chef@example.com",
		PasswordHash: "hashed",
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	staff := &entity.RestaurantStaff{ID: uuid.New(), UserID: user.ID, RestaurantID: restaurantID, Role: entity.StaffRoleAdmin}

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	f.hasher.EXPECT().Check("s3cret!pass", "hashed").Return(true)
	f.tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, user.ID, restaurantID).
		Return(staff, nil)
	f.tx.Factory.Staff.EXPECT().
		Update(ctx, staff).
		Return(nil)
	f.tx.Factory.Users.EXPECT().
		Update(ctx, user).
		Return(nil)
	f.tokenSvc.EXPECT().
		GenerateTokens(user.ID, "customer").
		Return("access", "refresh", nil)

	output, err := f.service.StaffLogin(ctx, &usecase.StaffLoginInput{
		Email:        user.Email,
		Password:     "s3cret!pass",
		RestaurantID: restaurantID,
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.NotNil(t, staff.LastLoginAt)
	assert.NotNil(t, user.LastLoginAt)
}

func TestUserService_StaffLogin_NoStaffRecord(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	user := &entity.User{ID: uuid.New(), Email: "chef@example.com", PasswordHash: "hashed", IsActive: true}

	f.tx.Factory.Users.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)
	f.hasher.EXPECT().Check("s3cret!pass", "hashed").Return(true)
	f.tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, user.ID, restaurantID).
		Return(nil, repository.ErrStaffNotFound)

	_, err := f.service.StaffLogin(ctx, &usecase.StaffLoginInput{
		Email:        user.Email,
		Password:     "s3cret!pass",
		RestaurantID: restaurantID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestUserService_UpdateProfile_PartialPatch(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FirstName: "Ada", LastName: "Wong", IsActive: true}

	f.tx.Factory.Users.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	f.tx.Factory.Users.EXPECT().
		Update(ctx, user).
		Return(nil)

	first := "Mei"
	updated, err := f.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Mei", updated.FirstName)
	assert.Equal(t, "Wong", updated.LastName, "unset fields are left alone")
}

func TestUserService_Deactivate(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), IsActive: true}

	f.tx.Factory.Users.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)
	f.tx.Factory.Users.EXPECT().
		Update(ctx, user).
		Return(nil)

	err := f.service.Deactivate(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tx.Factory.Users.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
