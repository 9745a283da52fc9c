package postgres

import (
	"context"

	"savor/internal/domain/entity"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderItemRepository implements the repository.OrderItemRepository interface using GORM.
type orderItemRepository struct {
	db *gorm.DB
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(db *gorm.DB) repository.OrderItemRepository {
	return &orderItemRepository{db: db}
}

// FindByID retrieves an order line by its unique ID.
func (repo *orderItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	var itemM model.OrderItemModel
	if err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find order item by id")
	}

	return toOrderItemDomain(&itemM), nil
}

// ListByOrder retrieves all lines of an order.
func (repo *orderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// Upsert inserts the line or merges it into the existing line for the same
// (order, menu item) pair. The ON CONFLICT clause makes the merge additive
// at the database, so two concurrent additions both land instead of one
// overwriting the other.
func (repo *orderItemRepository) Upsert(ctx context.Context, item *entity.OrderItem) error {
	itemM := fromOrderItemDomain(item)
	if itemM.ID == uuid.Nil {
		itemM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("order_items.quantity + excluded.quantity"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(itemM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrInvalidQuantity
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return errors.Wrap(err, "failed to upsert order item")
	}

	// The conflict path keeps the existing row, so re-read to hand the
	// caller the stored id and merged quantity.
	var stored model.OrderItemModel
	err = repo.db.WithContext(ctx).
		Where("order_id = ? AND menu_item_id = ?", itemM.OrderID, itemM.MenuItemID).
		First(&stored).Error
	if err != nil {
		return errors.Wrap(err, "failed to reload upserted order item")
	}

	*item = *toOrderItemDomain(&stored)

	return nil
}

// Update modifies an existing line.
func (repo *orderItemRepository) Update(ctx context.Context, item *entity.OrderItem) error {
	itemM := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrInvalidQuantity
		}

		return errors.Wrap(err, "failed to update order item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Delete removes a line permanently.
func (repo *orderItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderItemModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderItemNotFound
	}

	return nil
}

// toOrderItemDomain maps the persistence model to a pure domain entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromOrderItemDomain maps a domain entity to the persistence model.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		MenuItemID: data.MenuItemID,
		Quantity:   data.Quantity,
		UnitPrice:  data.UnitPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
