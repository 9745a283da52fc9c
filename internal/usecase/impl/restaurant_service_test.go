package impl

import (
	"context"
	"testing"
	"time"

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

type restaurantServiceFixture struct {
	restaurants *mockRepo.MockRestaurantRepository
	cuisines    *mockRepo.MockCuisineRepository
	menus       *mockRepo.MockMenuRepository
	menuItems   *mockRepo.MockMenuItemRepository
	staff       *mockRepo.MockStaffRepository
	service     usecase.RestaurantUsecase
}

func newRestaurantServiceFixture(t *testing.T) *restaurantServiceFixture {
	f := &restaurantServiceFixture{
		restaurants: mockRepo.NewMockRestaurantRepository(t),
		cuisines:    mockRepo.NewMockCuisineRepository(t),
		menus:       mockRepo.NewMockMenuRepository(t),
		menuItems:   mockRepo.NewMockMenuItemRepository(t),
		staff:       mockRepo.NewMockStaffRepository(t),
	}
	f.service = NewRestaurantService(RestaurantServiceParams{
		RestaurantRepo: f.restaurants,
		CuisineRepo:    f.cuisines,
		MenuRepo:       f.menus,
		MenuItemRepo:   f.menuItems,
		StaffRepo:      f.staff,
		Logger:         newDiscardLogger(),
	})

	return f
}

func TestRestaurantService_GetRestaurantInfo_Archived(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	// The active-only lookup treats archived restaurants as absent.
	f.restaurants.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := f.service.GetRestaurantInfo(ctx, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_ListRestaurantsByCuisine_UnknownCuisine(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	cuisineID := uuid.New()

	f.cuisines.EXPECT().
		FindByID(ctx, cuisineID).
		Return(nil, repository.ErrCuisineNotFound)

	_, err := f.service.ListRestaurantsByCuisine(ctx, cuisineID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_FilterRestaurants_MapsPredicates(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	name := "pasta"
	minRating := decimal.RequireFromString("4.0")
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	expected := []*entity.Restaurant{{ID: uuid.New(), Name: "Pasta Place"}}

	f.restaurants.EXPECT().
		Filter(ctx, mock.MatchedBy(func(filter repository.RestaurantFilter) bool {
			return filter.Name != nil && *filter.Name == name &&
				filter.MinRating != nil && filter.MinRating.Equal(minRating) &&
				filter.OpenAt != nil && filter.OpenAt.Equal(now)
		})).
		Return(expected, nil)

	restaurants, err := f.service.FilterRestaurants(ctx, &usecase.FilterRestaurantsInput{
		Name:      &name,
		OpenNow:   true,
		MinRating: &minRating,
		Now:       now,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, restaurants)
}

func TestRestaurantService_FilterRestaurants_ClosedNowSkipsOpenAt(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()

	f.restaurants.EXPECT().
		Filter(ctx, mock.MatchedBy(func(filter repository.RestaurantFilter) bool {
			return filter.OpenAt == nil
		})).
		Return(nil, nil)

	_, err := f.service.FilterRestaurants(ctx, &usecase.FilterRestaurantsInput{})
	require.NoError(t, err)
}

func TestRestaurantService_ListRestaurantMenus_ActiveOnly(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	menus := []*entity.Menu{{ID: uuid.New(), RestaurantID: restaurantID, Status: entity.LifecycleActive}}

	f.menus.EXPECT().
		ListByRestaurant(ctx, restaurantID, entity.LifecycleActive).
		Return(menus, nil)

	got, err := f.service.ListRestaurantMenus(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, menus, got)
}

func TestRestaurantService_ListArchivedRestaurantMenus_RequiresAdmin(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleCustomer}
	restaurantID := uuid.New()

	f.staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, restaurantID).
		Return(&entity.RestaurantStaff{Role: entity.StaffRoleStaff}, nil)

	_, err := f.service.ListArchivedRestaurantMenus(ctx, caller, restaurantID)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestRestaurantService_ListArchivedRestaurantMenus_PlatformAdmin(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	restaurantID := uuid.New()
	archived := []*entity.Menu{{ID: uuid.New(), RestaurantID: restaurantID, Status: entity.LifecycleArchived}}

	f.menus.EXPECT().
		ListByRestaurant(ctx, restaurantID, entity.LifecycleArchived).
		Return(archived, nil)

	got, err := f.service.ListArchivedRestaurantMenus(ctx, caller, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, archived, got)
}

func TestRestaurantService_GetMenu_NotFound(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	menuID := uuid.New()

	f.menus.EXPECT().
		FindByID(ctx, menuID).
		Return(nil, repository.ErrMenuNotFound)

	_, err := f.service.GetMenu(ctx, menuID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRestaurantService_ListMenuItems_ActiveOnly(t *testing.T) {
	f := newRestaurantServiceFixture(t)
	ctx := context.Background()
	menuID := uuid.New()
	items := []*entity.MenuItem{{ID: uuid.New(), MenuID: menuID, Status: entity.LifecycleActive}}

	f.menuItems.EXPECT().
		ListByMenu(ctx, menuID, entity.LifecycleActive).
		Return(items, nil)

	got, err := f.service.ListMenuItems(ctx, menuID)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}
