package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requirePlatformAdmin rejects callers without the platform admin role.
func requirePlatformAdmin(caller usecase.Principal) error {
	if caller.Role != entity.RoleAdmin {
		return domainerrors.ErrPermissionDenied.WrapMessage("platform admin role required")
	}

	return nil
}

// requireRestaurantAdmin rejects callers without admin rights at the
// restaurant. Platform admins pass unconditionally; everyone else needs a
// staff record with the admin role, looked up fresh on every call.
func requireRestaurantAdmin(ctx context.Context, staffRepo repository.StaffRepository, caller usecase.Principal, restaurantID uuid.UUID) error {
	if caller.Role == entity.RoleAdmin {
		return nil
	}

	staff, err := staffRepo.FindByUserAndRestaurant(ctx, caller.UserID, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return domainerrors.ErrPermissionDenied.WrapMessage("no staff record for this restaurant")
		}

		return errors.Wrap(err, "failed to load staff record for access check")
	}
	if !staff.IsAdmin() {
		return domainerrors.ErrPermissionDenied.WrapMessage("restaurant admin role required")
	}

	return nil
}

// RegisterRestaurant creates a restaurant with its cuisine associations.
func (srv *catalogService) RegisterRestaurant(ctx context.Context, caller usecase.Principal, input *usecase.RegisterRestaurantInput) (*entity.Restaurant, error) {
	if err := requirePlatformAdmin(caller); err != nil {
		return nil, err
	}

	opening, err := entity.ParseTimeOfDay(input.OpeningTime)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("opening_time must be HH:MM")
	}
	closing, err := entity.ParseTimeOfDay(input.ClosingTime)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("closing_time must be HH:MM")
	}

	var created *entity.Restaurant
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cuisines, cuisineErr := loadCuisines(ctx, repoFactory.CuisineRepo(), input.CuisineIDs)
		if cuisineErr != nil {
			return cuisineErr
		}

		restaurant := &entity.Restaurant{
			Name:        input.Name,
			Description: input.Description,
			Address:     input.Address,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
			OpeningTime: opening,
			ClosingTime: closing,
			Status:      entity.LifecycleActive,
			CreatorID:   caller.UserID,
			Cuisines:    cuisines,
		}

		if createErr := repoFactory.RestaurantRepo().Create(ctx, restaurant); createErr != nil {
			if errors.Is(createErr, repository.ErrRestaurantAlreadyExists) {
				return domainerrors.ErrConflict.WrapMessage("restaurant name or email already registered")
			}

			return errors.Wrap(createErr, "failed to create restaurant")
		}

		created = restaurant

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant registration failed", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute restaurant registration transaction")
	}

	srv.log(ctx).Info("Restaurant registered", slog.Any("restaurantID", created.ID), slog.Any("creatorID", caller.UserID))

	return created, nil
}

func loadCuisines(ctx context.Context, cuisineRepo repository.CuisineRepository, ids []uuid.UUID) ([]entity.Cuisine, error) {
	cuisines := make([]entity.Cuisine, 0, len(ids))
	for _, id := range ids {
		cuisine, err := cuisineRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCuisineNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown cuisine id " + id.String())
			}

			return nil, errors.Wrap(err, "failed to load cuisine")
		}
		cuisines = append(cuisines, *cuisine)
	}

	return cuisines, nil
}

// UpdateRestaurantInfo applies a partial patch to a restaurant.
func (srv *catalogService) UpdateRestaurantInfo(ctx context.Context, caller usecase.Principal, restaurantID uuid.UUID, input *usecase.UpdateRestaurantInput) (*entity.Restaurant, error) {
	var updated *entity.Restaurant
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if accessErr := requireRestaurantAdmin(ctx, repoFactory.StaffRepo(), caller, restaurantID); accessErr != nil {
			return accessErr
		}

		restaurantRepo := repoFactory.RestaurantRepo()
		restaurant, findErr := restaurantRepo.FindByID(ctx, restaurantID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
			}

			return errors.Wrap(findErr, "failed to load restaurant for update")
		}

		if patchErr := applyRestaurantPatch(ctx, repoFactory, restaurant, input); patchErr != nil {
			return patchErr
		}

		if updateErr := restaurantRepo.Update(ctx, restaurant); updateErr != nil {
			if errors.Is(updateErr, repository.ErrRestaurantAlreadyExists) {
				return domainerrors.ErrConflict.WrapMessage("restaurant name or email already registered")
			}

			return errors.Wrap(updateErr, "failed to update restaurant")
		}

		updated = restaurant

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant update failed", slog.Any("restaurantID", restaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute restaurant update transaction")
	}

	return updated, nil
}

func applyRestaurantPatch(ctx context.Context, repoFactory repository.RepositoryFactory, restaurant *entity.Restaurant, input *usecase.UpdateRestaurantInput) error {
	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		restaurant.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		restaurant.Email = *input.Email
	}
	if input.OpeningTime != nil {
		opening, err := entity.ParseTimeOfDay(*input.OpeningTime)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("opening_time must be HH:MM")
		}
		restaurant.OpeningTime = opening
	}
	if input.ClosingTime != nil {
		closing, err := entity.ParseTimeOfDay(*input.ClosingTime)
		if err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("closing_time must be HH:MM")
		}
		restaurant.ClosingTime = closing
	}
	if input.CuisineIDs != nil {
		cuisines, err := loadCuisines(ctx, repoFactory.CuisineRepo(), *input.CuisineIDs)
		if err != nil {
			return err
		}
		restaurant.Cuisines = cuisines
	}

	return nil
}

// DisableRestaurant archives a restaurant, hiding it from customers while
// keeping its rows for order history.
func (srv *catalogService) DisableRestaurant(ctx context.Context, caller usecase.Principal, restaurantID uuid.UUID) error {
	if err := requirePlatformAdmin(caller); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		restaurantRepo := repoFactory.RestaurantRepo()

		restaurant, findErr := restaurantRepo.FindByID(ctx, restaurantID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
			}

			return errors.Wrap(findErr, "failed to load restaurant for archiving")
		}

		restaurant.Status = entity.LifecycleArchived
		if updateErr := restaurantRepo.Update(ctx, restaurant); updateErr != nil {
			return errors.Wrap(updateErr, "failed to archive restaurant")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Restaurant archiving failed", slog.Any("restaurantID", restaurantID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute restaurant archiving transaction")
	}

	srv.log(ctx).Info("Restaurant archived", slog.Any("restaurantID", restaurantID))

	return nil
}

// AssignStaff links a user to a restaurant with a per-restaurant role.
func (srv *catalogService) AssignStaff(ctx context.Context, caller usecase.Principal, input *usecase.AssignStaffInput) (*entity.RestaurantStaff, error) {
	if err := requirePlatformAdmin(caller); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("staff role must be staff or admin")
	}

	var assigned *entity.RestaurantStaff
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := repoFactory.UserRepo().FindByID(ctx, input.UserID); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(findErr, "failed to load user for staff assignment")
		}
		if _, findErr := repoFactory.RestaurantRepo().FindByID(ctx, input.RestaurantID); findErr != nil {
			if errors.Is(findErr, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
			}

			return errors.Wrap(findErr, "failed to load restaurant for staff assignment")
		}

		staff := &entity.RestaurantStaff{
			UserID:       input.UserID,
			RestaurantID: input.RestaurantID,
			Role:         input.Role,
		}
		if createErr := repoFactory.StaffRepo().Create(ctx, staff); createErr != nil {
			if errors.Is(createErr, repository.ErrStaffAlreadyExists) {
				return domainerrors.ErrConflict.WrapMessage("user is already staff at this restaurant")
			}
			// The existence checks above can go stale before the insert.
			if errors.Is(createErr, repository.ErrInvalidReference) {
				return domainerrors.ErrNotFound.WrapMessage("user or restaurant no longer exists")
			}

			return errors.Wrap(createErr, "failed to create staff record")
		}

		assigned = staff

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Staff assignment failed", slog.Any("restaurantID", input.RestaurantID), slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute staff assignment transaction")
	}

	srv.log(ctx).Info("Staff assigned", slog.Any("restaurantID", input.RestaurantID), slog.Any("userID", input.UserID), slog.Any("role", input.Role))

	return assigned, nil
}

// CreateCuisine adds a cuisine category.
func (srv *catalogService) CreateCuisine(ctx context.Context, caller usecase.Principal, name string) (*entity.Cuisine, error) {
	if err := requirePlatformAdmin(caller); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cuisine name is required")
	}

	cuisine := &entity.Cuisine{Name: name}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.CuisineRepo().Create(ctx, cuisine); createErr != nil {
			if errors.Is(createErr, repository.ErrCuisineAlreadyExists) {
				return domainerrors.ErrConflict.WrapMessage("cuisine already exists")
			}

			return errors.Wrap(createErr, "failed to create cuisine")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute cuisine creation transaction")
	}

	return cuisine, nil
}

// CreateMenu creates a menu on a restaurant.
func (srv *catalogService) CreateMenu(ctx context.Context, caller usecase.Principal, input *usecase.CreateMenuInput) (*entity.Menu, error) {
	var created *entity.Menu
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if accessErr := requireRestaurantAdmin(ctx, repoFactory.StaffRepo(), caller, input.RestaurantID); accessErr != nil {
			return accessErr
		}

		if _, findErr := repoFactory.RestaurantRepo().FindByID(ctx, input.RestaurantID); findErr != nil {
			if errors.Is(findErr, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
			}

			return errors.Wrap(findErr, "failed to load restaurant for menu creation")
		}
		if _, findErr := repoFactory.CuisineRepo().FindByID(ctx, input.CuisineID); findErr != nil {
			if errors.Is(findErr, repository.ErrCuisineNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("unknown cuisine id")
			}

			return errors.Wrap(findErr, "failed to load cuisine for menu creation")
		}

		menu := &entity.Menu{
			RestaurantID: input.RestaurantID,
			Name:         input.Name,
			Description:  input.Description,
			CuisineID:    input.CuisineID,
			Status:       entity.LifecycleActive,
		}
		if createErr := repoFactory.MenuRepo().Create(ctx, menu); createErr != nil {
			return errors.Wrap(createErr, "failed to create menu")
		}

		created = menu

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Menu creation failed", slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute menu creation transaction")
	}

	return created, nil
}

// UpdateMenu applies a partial patch to a menu.
func (srv *catalogService) UpdateMenu(ctx context.Context, caller usecase.Principal, menuID uuid.UUID, input *usecase.UpdateMenuInput) (*entity.Menu, error) {
	var updated *entity.Menu
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		menu, accessErr := srv.loadMenuForAdmin(ctx, repoFactory, caller, menuID)
		if accessErr != nil {
			return accessErr
		}

		if input.Name != nil {
			menu.Name = *input.Name
		}
		if input.Description != nil {
			menu.Description = *input.Description
		}
		if input.CuisineID != nil {
			if _, findErr := repoFactory.CuisineRepo().FindByID(ctx, *input.CuisineID); findErr != nil {
				if errors.Is(findErr, repository.ErrCuisineNotFound) {
					return domainerrors.ErrValidationFailed.WrapMessage("unknown cuisine id")
				}

				return errors.Wrap(findErr, "failed to load cuisine for menu update")
			}
			menu.CuisineID = *input.CuisineID
		}

		if updateErr := repoFactory.MenuRepo().Update(ctx, menu); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update menu")
		}

		updated = menu

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Menu update failed", slog.Any("menuID", menuID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute menu update transaction")
	}

	return updated, nil
}

// ArchiveMenu hides a menu from the customer-facing read path without
// destroying rows referenced by order history.
func (srv *catalogService) ArchiveMenu(ctx context.Context, caller usecase.Principal, menuID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		menu, accessErr := srv.loadMenuForAdmin(ctx, repoFactory, caller, menuID)
		if accessErr != nil {
			return accessErr
		}

		menu.Status = entity.LifecycleArchived
		if updateErr := repoFactory.MenuRepo().Update(ctx, menu); updateErr != nil {
			return errors.Wrap(updateErr, "failed to archive menu")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute menu archiving transaction")
	}

	srv.log(ctx).Info("Menu archived", slog.Any("menuID", menuID))

	return nil
}

// DeleteMenu removes a menu permanently, cascading to its items.
func (srv *catalogService) DeleteMenu(ctx context.Context, caller usecase.Principal, menuID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, accessErr := srv.loadMenuForAdmin(ctx, repoFactory, caller, menuID); accessErr != nil {
			return accessErr
		}

		if deleteErr := repoFactory.MenuRepo().Delete(ctx, menuID); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrMenuNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("menu not found")
			}

			return errors.Wrap(deleteErr, "failed to delete menu")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute menu deletion transaction")
	}

	srv.log(ctx).Info("Menu deleted", slog.Any("menuID", menuID))

	return nil
}

// loadMenuForAdmin loads a menu and checks the caller administers its
// restaurant.
func (srv *catalogService) loadMenuForAdmin(ctx context.Context, repoFactory repository.RepositoryFactory, caller usecase.Principal, menuID uuid.UUID) (*entity.Menu, error) {
	menu, err := repoFactory.MenuRepo().FindByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu not found")
		}

		return nil, errors.Wrap(err, "failed to load menu")
	}

	if err := requireRestaurantAdmin(ctx, repoFactory.StaffRepo(), caller, menu.RestaurantID); err != nil {
		return nil, err
	}

	return menu, nil
}

// CreateMenuItem adds a dish to a menu.
func (srv *catalogService) CreateMenuItem(ctx context.Context, caller usecase.Principal, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be non-negative")
	}

	var created *entity.MenuItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, accessErr := srv.loadMenuForAdmin(ctx, repoFactory, caller, input.MenuID); accessErr != nil {
			return accessErr
		}

		item := &entity.MenuItem{
			MenuID:      input.MenuID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Status:      entity.LifecycleActive,
		}
		if createErr := repoFactory.MenuItemRepo().Create(ctx, item); createErr != nil {
			return errors.Wrap(createErr, "failed to create menu item")
		}

		created = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Menu item creation failed", slog.Any("menuID", input.MenuID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute menu item creation transaction")
	}

	return created, nil
}

// UpdateMenuItem applies a partial patch to a menu item.
func (srv *catalogService) UpdateMenuItem(ctx context.Context, caller usecase.Principal, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be non-negative")
	}

	var updated *entity.MenuItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, accessErr := srv.loadMenuItemForAdmin(ctx, repoFactory, caller, itemID)
		if accessErr != nil {
			return accessErr
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Price != nil {
			item.Price = *input.Price
		}

		if updateErr := repoFactory.MenuItemRepo().Update(ctx, item); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update menu item")
		}

		updated = item

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Menu item update failed", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute menu item update transaction")
	}

	return updated, nil
}

// ArchiveMenuItem hides a menu item from customers.
func (srv *catalogService) ArchiveMenuItem(ctx context.Context, caller usecase.Principal, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		item, accessErr := srv.loadMenuItemForAdmin(ctx, repoFactory, caller, itemID)
		if accessErr != nil {
			return accessErr
		}

		item.Status = entity.LifecycleArchived
		if updateErr := repoFactory.MenuItemRepo().Update(ctx, item); updateErr != nil {
			return errors.Wrap(updateErr, "failed to archive menu item")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute menu item archiving transaction")
	}

	srv.log(ctx).Info("Menu item archived", slog.Any("itemID", itemID))

	return nil
}

// DeleteMenuItem removes a menu item permanently.
func (srv *catalogService) DeleteMenuItem(ctx context.Context, caller usecase.Principal, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, accessErr := srv.loadMenuItemForAdmin(ctx, repoFactory, caller, itemID); accessErr != nil {
			return accessErr
		}

		if deleteErr := repoFactory.MenuItemRepo().Delete(ctx, itemID); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrMenuItemNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("menu item not found")
			}

			return errors.Wrap(deleteErr, "failed to delete menu item")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute menu item deletion transaction")
	}

	srv.log(ctx).Info("Menu item deleted", slog.Any("itemID", itemID))

	return nil
}

// loadMenuItemForAdmin loads a menu item and checks the caller administers
// the restaurant owning its menu.
func (srv *catalogService) loadMenuItemForAdmin(ctx context.Context, repoFactory repository.RepositoryFactory, caller usecase.Principal, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := repoFactory.MenuItemRepo().FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu item not found")
		}

		return nil, errors.Wrap(err, "failed to load menu item")
	}

	menu, err := repoFactory.MenuRepo().FindByID(ctx, item.MenuID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu for menu item access check")
	}

	if err := requireRestaurantAdmin(ctx, repoFactory.StaffRepo(), caller, menu.RestaurantID); err != nil {
		return nil, err
	}

	return item, nil
}
