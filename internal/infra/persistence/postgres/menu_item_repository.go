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

// menuItemRepository implements the repository.MenuItemRepository interface using GORM.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

// FindByID retrieves a menu item by ID regardless of lifecycle status.
func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by id")
	}

	return toMenuItemDomain(&itemM), nil
}

// ListByMenu retrieves a menu's items with the given status.
func (repo *menuItemRepository) ListByMenu(ctx context.Context, menuID uuid.UUID, status entity.LifecycleStatus) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel
	err := repo.db.WithContext(ctx).
		Where("menu_id = ? AND status = ?", menuID, status.String()).
		Order("name ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu items by menu")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new menu item.
func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)
	if itemM.ID == uuid.Nil {
		itemM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return errors.Wrap(err, "failed to create menu item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update modifies an existing menu item.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return errors.Wrap(err, "failed to update menu item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes a menu item permanently.
func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MenuItemModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

// toMenuItemDomain maps the persistence model to a pure domain entity.
func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	return &entity.MenuItem{
		ID:          data.ID,
		MenuID:      data.MenuID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Status:      entity.LifecycleStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMenuItemDomain maps a domain entity to the persistence model.
func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	return &model.MenuItemModel{
		ID:          data.ID,
		MenuID:      data.MenuID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Status:      data.Status.String(),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
