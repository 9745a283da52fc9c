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

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves an order by its unique ID, with line items loaded.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		First(&orderM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindCartForUpdate retrieves the open cart, the pending unpaid order, for
// a (user, restaurant) pair. Cancelled unpaid orders are not carts and
// never match. The SELECT FOR UPDATE lock serializes concurrent mutations
// of the same cart for the duration of the surrounding transaction. Items
// are loaded in a second query so the lock stays on the orders row alone.
func (repo *orderRepository) FindCartForUpdate(ctx context.Context, userID, restaurantID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND restaurant_id = ? AND paid = false AND status = ?",
			userID, restaurantID, entity.OrderStatusPending.String()).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cart")
	}

	var itemModels []model.OrderItemModel
	err = repo.db.WithContext(ctx).
		Where("order_id = ?", orderM.ID).
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart items")
	}
	orderM.Items = itemModels

	return toOrderDomain(&orderM), nil
}

// ListByUserAndStatus retrieves a user's orders in the given status.
func (repo *orderRepository) ListByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND status = ?", userID, status.String()).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return toOrderDomains(orderModels), nil
}

// ListPaidByUser retrieves a user's order history, newest first.
func (repo *orderRepository) ListPaidByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND paid = true", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list paid orders")
	}

	return toOrderDomains(orderModels), nil
}

// Create persists a new order. The partial unique index on open carts turns
// a lost creation race into ErrDuplicateCart.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if orderM.ID == uuid.Nil {
		orderM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("Items").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCart
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update modifies an existing order. Line items are managed through
// OrderItemRepository and never written here.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Items").Save(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to update order")
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

// toOrderDomain maps the persistence model to a pure domain entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, *toOrderItemDomain(&itemM))
	}

	return &entity.Order{
		ID:           data.ID,
		OrderNumber:  data.OrderNumber,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Status:       entity.OrderStatus(data.Status),
		TotalPrice:   data.TotalPrice,
		Paid:         data.Paid,
		AddressID:    data.AddressID,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOrderDomain maps a domain entity to the persistence model.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:           data.ID,
		OrderNumber:  data.OrderNumber,
		UserID:       data.UserID,
		RestaurantID: data.RestaurantID,
		Status:       data.Status.String(),
		TotalPrice:   data.TotalPrice,
		Paid:         data.Paid,
		AddressID:    data.AddressID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
