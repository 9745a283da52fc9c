package postgres

import (
	"context"

	"savor/internal/domain/entity"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// menuRepository implements the repository.MenuRepository interface using GORM.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

// FindByID retrieves a menu by ID regardless of lifecycle status.
func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	var menuM model.MenuModel
	if err := repo.db.WithContext(ctx).First(&menuM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu by id")
	}

	return toMenuDomain(&menuM), nil
}

// ListByRestaurant retrieves a restaurant's menus with the given status.
func (repo *menuRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status entity.LifecycleStatus) ([]*entity.Menu, error) {
	var menuModels []*model.MenuModel
	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND status = ?", restaurantID, status.String()).
		Order("name ASC").
		Find(&menuModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menus by restaurant")
	}

	menus := make([]*entity.Menu, 0, len(menuModels))
	for _, menuM := range menuModels {
		menus = append(menus, toMenuDomain(menuM))
	}

	return menus, nil
}

// Create persists a new menu.
func (repo *menuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	menuM := fromMenuDomain(menu)
	if menuM.ID == uuid.Nil {
		menuM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(menuM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return errors.Wrap(err, "failed to create menu")
	}

	menu.ID = menuM.ID
	menu.CreatedAt = menuM.CreatedAt
	menu.UpdatedAt = menuM.UpdatedAt

	return nil
}

// Update modifies an existing menu.
func (repo *menuRepository) Update(ctx context.Context, menu *entity.Menu) error {
	menuM := fromMenuDomain(menu)

	if err := repo.db.WithContext(ctx).Save(menuM).Error; err != nil {
		return errors.Wrap(err, "failed to update menu")
	}

	menu.UpdatedAt = menuM.UpdatedAt

	return nil
}

// Delete removes a menu permanently. The schema-level cascade takes its
// items with it.
func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MenuModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

// toMenuDomain maps the persistence model to a pure domain entity.
func toMenuDomain(data *model.MenuModel) *entity.Menu {
	return &entity.Menu{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		CuisineID:    data.CuisineID,
		Status:       entity.LifecycleStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromMenuDomain maps a domain entity to the persistence model.
func fromMenuDomain(data *entity.Menu) *model.MenuModel {
	return &model.MenuModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		CuisineID:    data.CuisineID,
		Status:       data.Status.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
