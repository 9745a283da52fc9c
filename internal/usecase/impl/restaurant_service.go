package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface. Reads skip
// the transaction manager; each call is a single repository query.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	cuisineRepo    repository.CuisineRepository
	menuRepo       repository.MenuRepository
	menuItemRepo   repository.MenuItemRepository
	staffRepo      repository.StaffRepository
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for restaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	CuisineRepo    repository.CuisineRepository
	MenuRepo       repository.MenuRepository
	MenuItemRepo   repository.MenuItemRepository
	StaffRepo      repository.StaffRepository
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		cuisineRepo:    params.CuisineRepo,
		menuRepo:       params.MenuRepo,
		menuItemRepo:   params.MenuItemRepo,
		staffRepo:      params.StaffRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRestaurantInfo retrieves an active restaurant. An archived restaurant
// is reported as absent, not as forbidden.
func (srv *restaurantService) GetRestaurantInfo(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindActiveByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to load restaurant")
	}

	return restaurant, nil
}

// ListRestaurants retrieves all active restaurants.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.restaurantRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

// ListRestaurantsByCuisine retrieves the active restaurants serving the cuisine.
func (srv *restaurantService) ListRestaurantsByCuisine(ctx context.Context, cuisineID uuid.UUID) ([]*entity.Restaurant, error) {
	if _, err := srv.cuisineRepo.FindByID(ctx, cuisineID); err != nil {
		if errors.Is(err, repository.ErrCuisineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("cuisine not found")
		}

		return nil, errors.Wrap(err, "failed to load cuisine")
	}

	restaurants, err := srv.restaurantRepo.ListByCuisine(ctx, cuisineID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants by cuisine")
	}

	return restaurants, nil
}

// FilterRestaurants retrieves the active restaurants matching every
// supplied filter, combined conjunctively.
func (srv *restaurantService) FilterRestaurants(ctx context.Context, input *usecase.FilterRestaurantsInput) ([]*entity.Restaurant, error) {
	filter := repository.RestaurantFilter{
		Name:       input.Name,
		CuisineIDs: input.CuisineIDs,
		MinRating:  input.MinRating,
	}
	if input.OpenNow {
		at := input.Now
		if at.IsZero() {
			at = time.Now()
		}
		filter.OpenAt = &at
	}

	restaurants, err := srv.restaurantRepo.Filter(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter restaurants")
	}

	return restaurants, nil
}

// ListCuisines retrieves all cuisines.
func (srv *restaurantService) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	cuisines, err := srv.cuisineRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cuisines")
	}

	return cuisines, nil
}

// GetMenu retrieves a menu by ID.
func (srv *restaurantService) GetMenu(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu not found")
		}

		return nil, errors.Wrap(err, "failed to load menu")
	}

	return menu, nil
}

// ListRestaurantMenus retrieves a restaurant's active menus.
func (srv *restaurantService) ListRestaurantMenus(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Menu, error) {
	menus, err := srv.menuRepo.ListByRestaurant(ctx, restaurantID, entity.LifecycleActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant menus")
	}

	return menus, nil
}

// ListArchivedRestaurantMenus retrieves a restaurant's archived menus for
// its administrators.
func (srv *restaurantService) ListArchivedRestaurantMenus(ctx context.Context, caller usecase.Principal, restaurantID uuid.UUID) ([]*entity.Menu, error) {
	if err := requireRestaurantAdmin(ctx, srv.staffRepo, caller, restaurantID); err != nil {
		srv.log(ctx).Warn("Archived menu listing denied", slog.Any("restaurantID", restaurantID), slog.Any("userID", caller.UserID))

		return nil, err
	}

	menus, err := srv.menuRepo.ListByRestaurant(ctx, restaurantID, entity.LifecycleArchived)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived restaurant menus")
	}

	return menus, nil
}

// GetMenuItem retrieves a menu item by ID.
func (srv *restaurantService) GetMenuItem(ctx context.Context, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuItemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu item not found")
		}

		return nil, errors.Wrap(err, "failed to load menu item")
	}

	return item, nil
}

// ListMenuItems retrieves a menu's active items.
func (srv *restaurantService) ListMenuItems(ctx context.Context, menuID uuid.UUID) ([]*entity.MenuItem, error) {
	items, err := srv.menuItemRepo.ListByMenu(ctx, menuID, entity.LifecycleActive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	return items, nil
}
