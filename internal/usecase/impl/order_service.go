package impl

import (
	"context"
	"log/slog"

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

// orderService implements the OrderUsecase interface. Cart mutations run
// inside one transaction holding the cart's row lock, so concurrent
// requests against the same cart serialize instead of clobbering each
// other.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	addressRepo   repository.AddressRepository
	menuItemRepo  repository.MenuItemRepository
	numberGen     service.OrderNumberGenerator
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	OrderItemRepo repository.OrderItemRepository
	AddressRepo   repository.AddressRepository
	MenuItemRepo  repository.MenuItemRepository
	NumberGen     service.OrderNumberGenerator
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		orderItemRepo: params.OrderItemRepo,
		addressRepo:   params.AddressRepo,
		menuItemRepo:  params.MenuItemRepo,
		numberGen:     params.NumberGen,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder merges the item into the caller's open cart at the
// restaurant, creating the cart first when none exists. Repeating the call
// with the same item adds to the existing line instead of duplicating it.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := repoFactory.RestaurantRepo().FindActiveByID(ctx, input.RestaurantID); findErr != nil {
			if errors.Is(findErr, repository.ErrRestaurantNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("restaurant not found")
			}

			return errors.Wrap(findErr, "failed to load restaurant for order")
		}

		menuItem, itemErr := srv.loadOrderableMenuItem(ctx, repoFactory, input.RestaurantID, input.MenuItemID)
		if itemErr != nil {
			return itemErr
		}

		cart, cartErr := srv.findOrCreateCart(ctx, repoFactory, userID, input.RestaurantID)
		if cartErr != nil {
			return cartErr
		}

		line := &entity.OrderItem{
			OrderID:    cart.ID,
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
			UnitPrice:  menuItem.Price,
		}
		if upsertErr := repoFactory.OrderItemRepo().Upsert(ctx, line); upsertErr != nil {
			if errors.Is(upsertErr, repository.ErrInvalidQuantity) {
				return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
			}

			return errors.Wrap(upsertErr, "failed to merge order line")
		}

		if totalErr := srv.recomputeTotal(ctx, repoFactory, cart); totalErr != nil {
			return totalErr
		}

		placed = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Place order failed", slog.Any("userID", userID), slog.Any("restaurantID", input.RestaurantID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute place order transaction")
	}

	srv.log(ctx).Debug("Order line placed", slog.Any("orderID", placed.ID), slog.String("orderNumber", placed.OrderNumber))

	return placed, nil
}

// loadOrderableMenuItem loads the menu item and verifies it sits on an
// active menu of the given restaurant.
func (srv *orderService) loadOrderableMenuItem(ctx context.Context, repoFactory repository.RepositoryFactory, restaurantID, menuItemID uuid.UUID) (*entity.MenuItem, error) {
	menuItem, err := repoFactory.MenuItemRepo().FindByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu item not found")
		}

		return nil, errors.Wrap(err, "failed to load menu item for order")
	}
	if !menuItem.Status.IsActive() {
		return nil, domainerrors.ErrNotFound.WrapMessage("menu item not found")
	}

	menu, err := repoFactory.MenuRepo().FindByID(ctx, menuItem.MenuID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu for order")
	}
	if menu.RestaurantID != restaurantID || !menu.Status.IsActive() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("menu item is not orderable at this restaurant")
	}

	return menuItem, nil
}

// findOrCreateCart returns the row-locked open cart for the pair, creating
// it when absent. A creation race is lost to the partial unique index, in
// which case the winner's cart is locked and reused.
func (srv *orderService) findOrCreateCart(ctx context.Context, repoFactory repository.RepositoryFactory, userID, restaurantID uuid.UUID) (*entity.Order, error) {
	orderRepo := repoFactory.OrderRepo()

	cart, err := orderRepo.FindCartForUpdate(ctx, userID, restaurantID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to look up open cart")
	}

	number, err := srv.numberGen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order number")
	}

	cart = &entity.Order{
		OrderNumber:  number,
		UserID:       userID,
		RestaurantID: restaurantID,
		Status:       entity.OrderStatusPending,
		Paid:         false,
	}
	err = orderRepo.Create(ctx, cart)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrDuplicateCart) {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	cart, err = orderRepo.FindCartForUpdate(ctx, userID, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart after lost creation race")
	}

	return cart, nil
}

// AddOrderItem merges the item into an existing open order owned by the
// caller and recomputes the total.
func (srv *orderService) AddOrderItem(ctx context.Context, userID uuid.UUID, input *usecase.AddOrderItemInput) (*entity.OrderItem, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	var merged *entity.OrderItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, lockErr := srv.lockOwnedCart(ctx, repoFactory, userID, input.OrderID)
		if lockErr != nil {
			return lockErr
		}

		menuItem, itemErr := srv.loadOrderableMenuItem(ctx, repoFactory, cart.RestaurantID, input.MenuItemID)
		if itemErr != nil {
			return itemErr
		}

		line := &entity.OrderItem{
			OrderID:    cart.ID,
			MenuItemID: menuItem.ID,
			Quantity:   input.Quantity,
			UnitPrice:  menuItem.Price,
		}
		if upsertErr := repoFactory.OrderItemRepo().Upsert(ctx, line); upsertErr != nil {
			if errors.Is(upsertErr, repository.ErrInvalidQuantity) {
				return domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
			}

			return errors.Wrap(upsertErr, "failed to merge order line")
		}

		if totalErr := srv.recomputeTotal(ctx, repoFactory, cart); totalErr != nil {
			return totalErr
		}

		merged = line

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add order item failed", slog.Any("orderID", input.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add order item transaction")
	}

	return merged, nil
}

// lockOwnedCart loads the order, verifies ownership and that it is still
// an open cart, and returns it with the cart row lock held. Paid and
// cancelled orders both fail the cart check.
func (srv *orderService) lockOwnedCart(ctx context.Context, repoFactory repository.RepositoryFactory, userID, orderID uuid.UUID) (*entity.Order, error) {
	orderRepo := repoFactory.OrderRepo()

	order, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	// Another user's order is indistinguishable from an absent one.
	if order.UserID != userID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}
	if !order.IsCart() {
		return nil, domainerrors.ErrOrderNotMutable.WrapMessage("order is no longer an open cart")
	}

	cart, err := orderRepo.FindCartForUpdate(ctx, userID, order.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotMutable.WrapMessage("order is no longer an open cart")
		}

		return nil, errors.Wrap(err, "failed to lock cart")
	}
	if cart.ID != orderID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	return cart, nil
}

// recomputeTotal reloads the order's lines and persists the new total.
func (srv *orderService) recomputeTotal(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	lines, err := repoFactory.OrderItemRepo().ListByOrder(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to reload order lines")
	}

	order.Items = make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		order.Items = append(order.Items, *line)
	}
	order.RecalculateTotal()

	if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
		return errors.Wrap(err, "failed to persist recomputed order total")
	}

	return nil
}

// ReduceOrderItemQuantity decrements a line by one. When the decrement
// reaches zero the line is removed and nil is returned.
func (srv *orderService) ReduceOrderItemQuantity(ctx context.Context, userID uuid.UUID, orderItemID uuid.UUID) (*entity.OrderItem, error) {
	var reduced *entity.OrderItem
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderItemRepo := repoFactory.OrderItemRepo()

		line, findErr := orderItemRepo.FindByID(ctx, orderItemID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderItemNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order item not found")
			}

			return errors.Wrap(findErr, "failed to load order line")
		}

		cart, lockErr := srv.lockOwnedCart(ctx, repoFactory, userID, line.OrderID)
		if lockErr != nil {
			return lockErr
		}

		// Re-read under the lock; a concurrent reduce may have removed it.
		line, findErr = orderItemRepo.FindByID(ctx, orderItemID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderItemNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order item not found")
			}

			return errors.Wrap(findErr, "failed to reload order line")
		}

		if line.Quantity <= 1 {
			if deleteErr := orderItemRepo.Delete(ctx, line.ID); deleteErr != nil {
				return errors.Wrap(deleteErr, "failed to remove exhausted order line")
			}
			reduced = nil
		} else {
			line.Quantity--
			if updateErr := orderItemRepo.Update(ctx, line); updateErr != nil {
				return errors.Wrap(updateErr, "failed to reduce order line quantity")
			}
			reduced = line
		}

		return srv.recomputeTotal(ctx, repoFactory, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Reduce order item failed", slog.Any("orderItemID", orderItemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute reduce order item transaction")
	}

	return reduced, nil
}

// DeleteOrderItem removes a line regardless of its quantity.
func (srv *orderService) DeleteOrderItem(ctx context.Context, userID uuid.UUID, orderItemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderItemRepo := repoFactory.OrderItemRepo()

		line, findErr := orderItemRepo.FindByID(ctx, orderItemID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderItemNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order item not found")
			}

			return errors.Wrap(findErr, "failed to load order line")
		}

		cart, lockErr := srv.lockOwnedCart(ctx, repoFactory, userID, line.OrderID)
		if lockErr != nil {
			return lockErr
		}

		if deleteErr := orderItemRepo.Delete(ctx, line.ID); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrOrderItemNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order item not found")
			}

			return errors.Wrap(deleteErr, "failed to delete order line")
		}

		return srv.recomputeTotal(ctx, repoFactory, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Delete order item failed", slog.Any("orderItemID", orderItemID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete order item transaction")
	}

	return nil
}

// AddOrderAddress creates a delivery address for the caller. The saved
// cap is counted under lock so two concurrent saves cannot both sneak in
// under the limit.
func (srv *orderService) AddOrderAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.OrderAddress, error) {
	var created *entity.OrderAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		if input.Saved {
			if capErr := srv.checkSavedAddressCap(ctx, addressRepo, userID, 1); capErr != nil {
				return capErr
			}
		}

		address := &entity.OrderAddress{
			UserID:       userID,
			AddressLine1: input.AddressLine1,
			AddressLine2: input.AddressLine2,
			PhoneNumber:  input.PhoneNumber,
			Email:        input.Email,
			Saved:        input.Saved,
		}
		if createErr := addressRepo.Create(ctx, address); createErr != nil {
			return errors.Wrap(createErr, "failed to create address")
		}

		created = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Add address failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute add address transaction")
	}

	return created, nil
}

// EditOrderAddress updates an address owned by the caller.
func (srv *orderService) EditOrderAddress(ctx context.Context, userID uuid.UUID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.OrderAddress, error) {
	var updated *entity.OrderAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := addressRepo.FindByID(ctx, addressID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAddressNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("address not found")
			}

			return errors.Wrap(findErr, "failed to load address")
		}
		if address.UserID != userID {
			return domainerrors.ErrNotFound.WrapMessage("address not found")
		}

		if input.Saved && !address.Saved {
			if capErr := srv.checkSavedAddressCap(ctx, addressRepo, userID, 1); capErr != nil {
				return capErr
			}
		}

		address.AddressLine1 = input.AddressLine1
		address.AddressLine2 = input.AddressLine2
		address.PhoneNumber = input.PhoneNumber
		address.Email = input.Email
		address.Saved = input.Saved

		if updateErr := addressRepo.Update(ctx, address); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Edit address failed", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute edit address transaction")
	}

	return updated, nil
}

// checkSavedAddressCap fails when adding more saved addresses would push
// the user past the cap. The count takes a per-user lock, serializing
// concurrent cap checks for the rest of the transaction.
func (srv *orderService) checkSavedAddressCap(ctx context.Context, addressRepo repository.AddressRepository, userID uuid.UUID, adding int64) error {
	count, err := addressRepo.CountSavedByUserForUpdate(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to count saved addresses")
	}
	if count+adding > entity.MaxSavedAddresses {
		return domainerrors.ErrSavedAddressLimit.WrapMessage("saved address limit reached")
	}

	return nil
}

// GetSavedAddresses retrieves the caller's saved addresses.
func (srv *orderService) GetSavedAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.OrderAddress, error) {
	addresses, err := srv.addressRepo.ListSavedByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved addresses")
	}

	return addresses, nil
}

// GetOrderHistory retrieves the caller's paid orders, newest first.
func (srv *orderService) GetOrderHistory(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListPaidByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order history")
	}

	return orders, nil
}

// GetOrdersByStatus retrieves the caller's orders in the given status.
func (srv *orderService) GetOrdersByStatus(ctx context.Context, userID uuid.UUID, status entity.OrderStatus) ([]*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	orders, err := srv.orderRepo.ListByUserAndStatus(ctx, userID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by status")
	}

	return orders, nil
}

// GetOrderDetails retrieves an order owned by the caller together with its
// lines resolved against the menu. A line whose menu item has since been
// deleted keeps its captured unit price and an empty name.
func (srv *orderService) GetOrderDetails(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*usecase.OrderDetails, error) {
	order, err := srv.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	details := &usecase.OrderDetails{
		Order: order,
		Lines: make([]usecase.OrderLine, 0, len(order.Items)),
	}
	for i := range order.Items {
		line := usecase.OrderLine{
			Item:          &order.Items[i],
			MenuItemPrice: order.Items[i].UnitPrice,
		}
		menuItem, itemErr := srv.menuItemRepo.FindByID(ctx, order.Items[i].MenuItemID)
		if itemErr == nil {
			line.MenuItemName = menuItem.Name
			line.MenuItemPrice = menuItem.Price
		} else if !errors.Is(itemErr, repository.ErrMenuItemNotFound) {
			return nil, errors.Wrap(itemErr, "failed to resolve menu item for order line")
		}
		details.Lines = append(details.Lines, line)
	}

	return details, nil
}

// GetOrderItems retrieves the lines of an order owned by the caller.
func (srv *orderService) GetOrderItems(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	if _, err := srv.loadOwnedOrder(ctx, userID, orderID); err != nil {
		return nil, err
	}

	lines, err := srv.orderItemRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order lines")
	}

	return lines, nil
}

func (srv *orderService) loadOwnedOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrNotFound.WrapMessage("order not found")
	}

	return order, nil
}

// UpdateOrderStatus moves a paid order along the status lifecycle. Only an
// admin of the order's restaurant may call it. Unpaid carts accept only
// the pending to cancelled move; terminal states accept nothing.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, caller usecase.Principal, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, findErr := orderRepo.FindByID(ctx, orderID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("order not found")
			}

			return errors.Wrap(findErr, "failed to load order for status update")
		}

		if accessErr := requireRestaurantAdmin(ctx, repoFactory.StaffRepo(), caller, order.RestaurantID); accessErr != nil {
			return accessErr
		}

		if !order.Paid && !(order.Status == entity.OrderStatusPending && next == entity.OrderStatusCancelled) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage("unpaid carts only accept cancellation")
		}
		if !order.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage(
				"cannot move from " + order.Status.String() + " to " + next.String())
		}

		order.Status = next
		if updateErr := orderRepo.Update(ctx, order); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist order status")
		}

		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update failed", slog.Any("orderID", orderID), slog.Any("next", next), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order status update transaction")
	}

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.Any("status", next))

	return updated, nil
}

// MarkOrderPaid seals the caller's cart. From here on the order is
// immutable to cart operations and appears in the order history.
func (srv *orderService) MarkOrderPaid(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	var sealed *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, lockErr := srv.lockOwnedCart(ctx, repoFactory, userID, orderID)
		if lockErr != nil {
			return lockErr
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("cannot pay for an empty order")
		}

		cart.Paid = true
		if updateErr := repoFactory.OrderRepo().Update(ctx, cart); updateErr != nil {
			return errors.Wrap(updateErr, "failed to seal order")
		}

		sealed = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Mark order paid failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute mark order paid transaction")
	}

	srv.log(ctx).Info("Order paid", slog.Any("orderID", orderID), slog.String("total", sealed.TotalPrice.String()))

	return sealed, nil
}
