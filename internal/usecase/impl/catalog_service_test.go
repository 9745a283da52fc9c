package impl

import (
	"context"
	"testing"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceFixture(t *testing.T) (*mockRepo.StubTxManager, usecase.CatalogUsecase) {
	tx := mockRepo.NewStubTxManager(t)
	service := NewCatalogService(CatalogServiceParams{
		TxManager: tx,
		Logger:    newDiscardLogger(),
	})

	return tx, service
}

func platformAdmin() usecase.Principal {
	return usecase.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func customer() usecase.Principal {
	return usecase.Principal{UserID: uuid.New(), Role: entity.RoleCustomer}
}

func TestCatalogService_RegisterRestaurant_Success(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	caller := platformAdmin()
	cuisine := &entity.Cuisine{ID: uuid.New(), Name: "Italian"}

	tx.Factory.Cuisines.EXPECT().
		FindByID(ctx, cuisine.ID).
		Return(cuisine, nil)
	tx.Factory.Restaurants.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Restaurant")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Restaurant).ID = uuid.New()
		}).
		Return(nil)

	restaurant, err := service.RegisterRestaurant(ctx, caller, &usecase.RegisterRestaurantInput{
		Name:        "Trattoria Roma",
		Address:     "1 Via Roma",
		Email:       "roma@example.com",
		OpeningTime: "11:30",
		ClosingTime: "22:00",
		CuisineIDs:  []uuid.UUID{cuisine.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, restaurant.Status)
	assert.Equal(t, caller.UserID, restaurant.CreatorID)
	assert.Equal(t, "11:30", restaurant.OpeningTime.String())
	assert.Equal(t, "22:00", restaurant.ClosingTime.String())
	require.Len(t, restaurant.Cuisines, 1)
	assert.Equal(t, "Italian", restaurant.Cuisines[0].Name)
}

func TestCatalogService_RegisterRestaurant_NonAdmin(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	_, err := service.RegisterRestaurant(context.Background(), customer(), &usecase.RegisterRestaurantInput{
		Name:        "Trattoria Roma",
		OpeningTime: "11:30",
		ClosingTime: "22:00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_RegisterRestaurant_MalformedTime(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	_, err := service.RegisterRestaurant(context.Background(), platformAdmin(), &usecase.RegisterRestaurantInput{
		Name:        "Trattoria Roma",
		OpeningTime: "11.30am",
		ClosingTime: "22:00",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_RegisterRestaurant_UnknownCuisine(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	cuisineID := uuid.New()

	tx.Factory.Cuisines.EXPECT().
		FindByID(ctx, cuisineID).
		Return(nil, repository.ErrCuisineNotFound)

	_, err := service.RegisterRestaurant(ctx, platformAdmin(), &usecase.RegisterRestaurantInput{
		Name:        "Trattoria Roma",
		OpeningTime: "11:30",
		ClosingTime: "22:00",
		CuisineIDs:  []uuid.UUID{cuisineID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateRestaurantInfo_StaffAdmin(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	caller := customer()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Old Name", Status: entity.LifecycleActive}

	tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, restaurant.ID).
		Return(&entity.RestaurantStaff{Role: entity.StaffRoleAdmin}, nil)
	tx.Factory.Restaurants.EXPECT().
		FindByID(ctx, restaurant.ID).
		Return(restaurant, nil)
	tx.Factory.Restaurants.EXPECT().
		Update(ctx, restaurant).
		Return(nil)

	name := "New Name"
	updated, err := service.UpdateRestaurantInfo(ctx, caller, restaurant.ID, &usecase.UpdateRestaurantInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestCatalogService_UpdateRestaurantInfo_PlainStaff(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	caller := customer()
	restaurantID := uuid.New()

	tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, restaurantID).
		Return(&entity.RestaurantStaff{Role: entity.StaffRoleStaff}, nil)

	name := "New Name"
	_, err := service.UpdateRestaurantInfo(ctx, caller, restaurantID, &usecase.UpdateRestaurantInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_DisableRestaurant(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New(), Status: entity.LifecycleActive}

	tx.Factory.Restaurants.EXPECT().
		FindByID(ctx, restaurant.ID).
		Return(restaurant, nil)
	tx.Factory.Restaurants.EXPECT().
		Update(ctx, restaurant).
		Return(nil)

	err := service.DisableRestaurant(ctx, platformAdmin(), restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleArchived, restaurant.Status)
}

func TestCatalogService_DisableRestaurant_NonAdmin(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	err := service.DisableRestaurant(context.Background(), customer(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_AssignStaff_Success(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	tx.Factory.Users.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	tx.Factory.Restaurants.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	tx.Factory.Staff.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RestaurantStaff")).
		Return(nil)

	staff, err := service.AssignStaff(ctx, platformAdmin(), &usecase.AssignStaffInput{
		RestaurantID: restaurantID,
		UserID:       userID,
		Role:         entity.StaffRoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StaffRoleAdmin, staff.Role)
}

func TestCatalogService_AssignStaff_InvalidRole(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	_, err := service.AssignStaff(context.Background(), platformAdmin(), &usecase.AssignStaffInput{
		RestaurantID: uuid.New(),
		UserID:       uuid.New(),
		Role:         entity.StaffRole("owner"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_AssignStaff_Duplicate(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	tx.Factory.Users.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	tx.Factory.Restaurants.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	tx.Factory.Staff.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RestaurantStaff")).
		Return(repository.ErrStaffAlreadyExists)

	_, err := service.AssignStaff(ctx, platformAdmin(), &usecase.AssignStaffInput{
		RestaurantID: restaurantID,
		UserID:       userID,
		Role:         entity.StaffRoleStaff,
	})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCatalogService_AssignStaff_StaleReference(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	tx.Factory.Users.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)
	tx.Factory.Restaurants.EXPECT().
		FindByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	// The user was deleted between the existence check and the insert,
	// so the foreign key rejects the row.
	tx.Factory.Staff.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RestaurantStaff")).
		Return(repository.ErrInvalidReference)

	_, err := service.AssignStaff(ctx, platformAdmin(), &usecase.AssignStaffInput{
		RestaurantID: restaurantID,
		UserID:       userID,
		Role:         entity.StaffRoleStaff,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_CreateCuisine_EmptyName(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	_, err := service.CreateCuisine(context.Background(), platformAdmin(), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateMenu_StaffOfAnotherRestaurant(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	caller := customer()
	restaurantID := uuid.New()

	tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, restaurantID).
		Return(nil, repository.ErrStaffNotFound)

	_, err := service.CreateMenu(ctx, caller, &usecase.CreateMenuInput{
		RestaurantID: restaurantID,
		Name:         "Lunch Specials",
		CuisineID:    uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestCatalogService_ArchiveMenu(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	menu := &entity.Menu{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.LifecycleActive}

	tx.Factory.Menus.EXPECT().
		FindByID(ctx, menu.ID).
		Return(menu, nil)
	tx.Factory.Menus.EXPECT().
		Update(ctx, menu).
		Return(nil)

	err := service.ArchiveMenu(ctx, platformAdmin(), menu.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleArchived, menu.Status)
}

func TestCatalogService_DeleteMenu(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	menu := &entity.Menu{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.LifecycleActive}

	tx.Factory.Menus.EXPECT().
		FindByID(ctx, menu.ID).
		Return(menu, nil)
	tx.Factory.Menus.EXPECT().
		Delete(ctx, menu.ID).
		Return(nil)

	err := service.DeleteMenu(ctx, platformAdmin(), menu.ID)
	require.NoError(t, err)
}

func TestCatalogService_CreateMenuItem_NegativePrice(t *testing.T) {
	_, service := newCatalogServiceFixture(t)

	_, err := service.CreateMenuItem(context.Background(), platformAdmin(), &usecase.CreateMenuItemInput{
		MenuID: uuid.New(),
		Name:   "Soup",
		Price:  decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateMenuItem_Success(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	menu := &entity.Menu{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.LifecycleActive}

	tx.Factory.Menus.EXPECT().
		FindByID(ctx, menu.ID).
		Return(menu, nil)
	tx.Factory.MenuItems.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Return(nil)

	item, err := service.CreateMenuItem(ctx, platformAdmin(), &usecase.CreateMenuItemInput{
		MenuID: menu.ID,
		Name:   "Margherita",
		Price:  decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, item.Status)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestCatalogService_ArchiveMenuItem(t *testing.T) {
	tx, service := newCatalogServiceFixture(t)
	ctx := context.Background()
	menu := &entity.Menu{ID: uuid.New(), RestaurantID: uuid.New()}
	item := &entity.MenuItem{ID: uuid.New(), MenuID: menu.ID, Status: entity.LifecycleActive}

	tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, item.ID).
		Return(item, nil)
	tx.Factory.Menus.EXPECT().
		FindByID(ctx, menu.ID).
		Return(menu, nil)
	tx.Factory.MenuItems.EXPECT().
		Update(ctx, item).
		Return(nil)

	err := service.ArchiveMenuItem(ctx, platformAdmin(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleArchived, item.Status)
}
