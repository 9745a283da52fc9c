package impl

import (
	"context"
	"testing"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	mockRepo "savor/internal/mocks/repository"
	mockSvc "savor/internal/mocks/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	tx        *mockRepo.StubTxManager
	numberGen *mockSvc.MockOrderNumberGenerator
	service   usecase.OrderUsecase
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	tx := mockRepo.NewStubTxManager(t)
	numberGen := mockSvc.NewMockOrderNumberGenerator(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:     tx,
		OrderRepo:     tx.Factory.Orders,
		OrderItemRepo: tx.Factory.OrderItems,
		AddressRepo:   tx.Factory.Addresses,
		MenuItemRepo:  tx.Factory.MenuItems,
		NumberGen:     numberGen,
		Logger:        newDiscardLogger(),
	})

	return &orderServiceFixture{tx: tx, numberGen: numberGen, service: service}
}

// orderableItem wires up the restaurant, menu and menu item lookups that
// every successful cart mutation performs.
func (f *orderServiceFixture) orderableItem(ctx context.Context, restaurantID uuid.UUID, price string) *entity.MenuItem {
	menuID := uuid.New()
	item := &entity.MenuItem{
		ID:     uuid.New(),
		MenuID: menuID,
		Name:   "Pad Thai",
		Price:  decimal.RequireFromString(price),
		Status: entity.LifecycleActive,
	}

	f.tx.Factory.Restaurants.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, Status: entity.LifecycleActive}, nil).
		Maybe()
	f.tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, item.ID).
		Return(item, nil)
	f.tx.Factory.Menus.EXPECT().
		FindByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, RestaurantID: restaurantID, Status: entity.LifecycleActive}, nil)

	return item
}

func TestOrderService_PlaceOrder_CreatesCart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	cartID := uuid.New()

	item := f.orderableItem(ctx, restaurantID, "9.50")

	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, restaurantID).
		Return(nil, repository.ErrOrderNotFound)
	f.numberGen.EXPECT().Generate().Return("7XK2MQ4PWZ", nil)
	f.tx.Factory.Orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = cartID
		}).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, cartID).
		Return([]*entity.OrderItem{
			{OrderID: cartID, MenuItemID: item.ID, Quantity: 2, UnitPrice: item.Price},
		}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   item.ID,
		Quantity:     2,
	})
	require.NoError(t, err)
	assert.Equal(t, "7XK2MQ4PWZ", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.Paid)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("19.00")),
		"got total %s", order.TotalPrice)
}

func TestOrderService_PlaceOrder_MergesIntoOpenCart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	cartID := uuid.New()

	item := f.orderableItem(ctx, restaurantID, "4.00")

	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, restaurantID).
		Return(&entity.Order{ID: cartID, UserID: userID, RestaurantID: restaurantID, Status: entity.OrderStatusPending}, nil)
	f.tx.Factory.OrderItems.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil)
	// Quantities 1 and 2 already merged into a single line of 3.
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, cartID).
		Return([]*entity.OrderItem{
			{OrderID: cartID, MenuItemID: item.ID, Quantity: 3, UnitPrice: item.Price},
		}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   item.ID,
		Quantity:     2,
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("12.00")))
}

func TestOrderService_PlaceOrder_LostCreationRace(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	winnerCartID := uuid.New()

	item := f.orderableItem(ctx, restaurantID, "5.00")

	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, restaurantID).
		Return(nil, repository.ErrOrderNotFound).
		Once()
	f.numberGen.EXPECT().Generate().Return("AAAA222233", nil)
	f.tx.Factory.Orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(repository.ErrDuplicateCart)
	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, restaurantID).
		Return(&entity.Order{ID: winnerCartID, UserID: userID, RestaurantID: restaurantID, Status: entity.OrderStatusPending}, nil).
		Once()
	f.tx.Factory.OrderItems.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, winnerCartID).
		Return([]*entity.OrderItem{
			{OrderID: winnerCartID, MenuItemID: item.ID, Quantity: 1, UnitPrice: item.Price},
		}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   item.ID,
		Quantity:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, winnerCartID, order.ID)
}

func TestOrderService_PlaceOrder_ArchivedRestaurant(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	f.tx.Factory.Restaurants.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	_, err := f.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   uuid.New(),
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_PlaceOrder_ItemFromAnotherRestaurant(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	menuID := uuid.New()
	itemID := uuid.New()

	f.tx.Factory.Restaurants.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	f.tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.MenuItem{ID: itemID, MenuID: menuID, Status: entity.LifecycleActive}, nil)
	f.tx.Factory.Menus.EXPECT().
		FindByID(ctx, menuID).
		Return(&entity.Menu{ID: menuID, RestaurantID: uuid.New(), Status: entity.LifecycleActive}, nil)

	_, err := f.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   itemID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_PlaceOrder_ArchivedMenuItem(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	restaurantID := uuid.New()
	itemID := uuid.New()

	f.tx.Factory.Restaurants.EXPECT().
		FindActiveByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	f.tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.MenuItem{ID: itemID, MenuID: uuid.New(), Status: entity.LifecycleArchived}, nil)

	_, err := f.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   itemID,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_AddOrderItem_PaidOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Paid: true}, nil)

	_, err := f.service.AddOrderItem(ctx, userID, &usecase.AddOrderItemInput{
		OrderID:    orderID,
		MenuItemID: uuid.New(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotMutable)
}

func TestOrderService_AddOrderItem_NotOwned(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	_, err := f.service.AddOrderItem(ctx, uuid.New(), &usecase.AddOrderItemInput{
		OrderID:    orderID,
		MenuItemID: uuid.New(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

// lockCart wires the FindByID plus FindCartForUpdate pair used by every
// line mutation on an existing order.
func (f *orderServiceFixture) lockCart(ctx context.Context, userID uuid.UUID, cart *entity.Order) {
	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, cart.ID).
		Return(cart, nil)
	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, cart.RestaurantID).
		Return(cart, nil)
}

func TestOrderService_ReduceOrderItemQuantity_AboveOne(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: uuid.New(), Status: entity.OrderStatusPending}
	line := &entity.OrderItem{ID: uuid.New(), OrderID: cart.ID, Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")}

	f.tx.Factory.OrderItems.EXPECT().
		FindByID(ctx, line.ID).
		Return(line, nil).
		Times(2)
	f.lockCart(ctx, userID, cart)
	f.tx.Factory.OrderItems.EXPECT().
		Update(ctx, line).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, cart.ID).
		Return([]*entity.OrderItem{line}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, cart).
		Return(nil)

	reduced, err := f.service.ReduceOrderItemQuantity(ctx, userID, line.ID)
	require.NoError(t, err)
	require.NotNil(t, reduced)
	assert.Equal(t, 2, reduced.Quantity)
	assert.True(t, cart.TotalPrice.Equal(decimal.RequireFromString("5.00")))
}

func TestOrderService_ReduceOrderItemQuantity_AtOne_RemovesLine(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: uuid.New(), Status: entity.OrderStatusPending}
	line := &entity.OrderItem{ID: uuid.New(), OrderID: cart.ID, Quantity: 1, UnitPrice: decimal.RequireFromString("2.50")}

	f.tx.Factory.OrderItems.EXPECT().
		FindByID(ctx, line.ID).
		Return(line, nil).
		Times(2)
	f.lockCart(ctx, userID, cart)
	f.tx.Factory.OrderItems.EXPECT().
		Delete(ctx, line.ID).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, cart.ID).
		Return(nil, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, cart).
		Return(nil)

	reduced, err := f.service.ReduceOrderItemQuantity(ctx, userID, line.ID)
	require.NoError(t, err)
	assert.Nil(t, reduced, "a line reduced from 1 is removed, not kept at 0")
	assert.True(t, cart.TotalPrice.IsZero())
}

func TestOrderService_DeleteOrderItem(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: uuid.New(), Status: entity.OrderStatusPending}
	line := &entity.OrderItem{ID: uuid.New(), OrderID: cart.ID, Quantity: 4, UnitPrice: decimal.RequireFromString("3.00")}

	f.tx.Factory.OrderItems.EXPECT().
		FindByID(ctx, line.ID).
		Return(line, nil)
	f.lockCart(ctx, userID, cart)
	f.tx.Factory.OrderItems.EXPECT().
		Delete(ctx, line.ID).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, cart.ID).
		Return(nil, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, cart).
		Return(nil)

	err := f.service.DeleteOrderItem(ctx, userID, line.ID)
	require.NoError(t, err)
}

func TestOrderService_AddOrderAddress_SavedCapReached(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tx.Factory.Addresses.EXPECT().
		CountSavedByUserForUpdate(ctx, userID).
		Return(int64(entity.MaxSavedAddresses), nil)

	_, err := f.service.AddOrderAddress(ctx, userID, &usecase.AddressInput{
		AddressLine1: "1 Main St",
		PhoneNumber:  "0912345678",
		Email:        "c@example.com",
		Saved:        true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSavedAddressLimit)
}

func TestOrderService_AddOrderAddress_UnsavedSkipsCap(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tx.Factory.Addresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OrderAddress")).
		Return(nil)

	address, err := f.service.AddOrderAddress(ctx, userID, &usecase.AddressInput{
		AddressLine1: "1 Main St",
		PhoneNumber:  "0912345678",
		Email:        "c@example.com",
		Saved:        false,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.False(t, address.Saved)
}

func TestOrderService_AddOrderAddress_SavedUnderCap(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tx.Factory.Addresses.EXPECT().
		CountSavedByUserForUpdate(ctx, userID).
		Return(int64(1), nil)
	f.tx.Factory.Addresses.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.OrderAddress")).
		Return(nil)

	address, err := f.service.AddOrderAddress(ctx, userID, &usecase.AddressInput{
		AddressLine1: "1 Main St",
		PhoneNumber:  "0912345678",
		Email:        "c@example.com",
		Saved:        true,
	})
	require.NoError(t, err)
	assert.True(t, address.Saved)
}

func TestOrderService_EditOrderAddress_SaveAtCap(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.OrderAddress{ID: uuid.New(), UserID: userID, Saved: false}

	f.tx.Factory.Addresses.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)
	f.tx.Factory.Addresses.EXPECT().
		CountSavedByUserForUpdate(ctx, userID).
		Return(int64(entity.MaxSavedAddresses), nil)

	_, err := f.service.EditOrderAddress(ctx, userID, existing.ID, &usecase.AddressInput{
		AddressLine1: "2 Side St",
		PhoneNumber:  "0912345678",
		Email:        "c@example.com",
		Saved:        true,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSavedAddressLimit)
}

func TestOrderService_EditOrderAddress_NotOwned(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	addressID := uuid.New()

	f.tx.Factory.Addresses.EXPECT().
		FindByID(ctx, addressID).
		Return(&entity.OrderAddress{ID: addressID, UserID: uuid.New()}, nil)

	_, err := f.service.EditOrderAddress(ctx, uuid.New(), addressID, &usecase.AddressInput{
		AddressLine1: "2 Side St",
		PhoneNumber:  "0912345678",
		Email:        "c@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOrderService_GetOrdersByStatus_UnknownStatus(t *testing.T) {
	f := newOrderServiceFixture(t)

	_, err := f.service.GetOrdersByStatus(context.Background(), uuid.New(), entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_GetOrderDetails_ResolvesLines(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.OrderItem{
			{ID: uuid.New(), MenuItemID: itemID, Quantity: 2, UnitPrice: decimal.RequireFromString("6.00")},
		},
	}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)
	f.tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, itemID).
		Return(&entity.MenuItem{ID: itemID, Name: "Green Curry", Price: decimal.RequireFromString("6.50")}, nil)

	details, err := f.service.GetOrderDetails(ctx, userID, order.ID)
	require.NoError(t, err)
	require.Len(t, details.Lines, 1)
	assert.Equal(t, "Green Curry", details.Lines[0].MenuItemName)
	assert.True(t, details.Lines[0].MenuItemPrice.Equal(decimal.RequireFromString("6.50")))
}

func TestOrderService_GetOrderDetails_DeletedMenuItemKeepsCapturedPrice(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	order := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Items: []entity.OrderItem{
			{ID: uuid.New(), MenuItemID: itemID, Quantity: 1, UnitPrice: decimal.RequireFromString("8.00")},
		},
	}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)
	f.tx.Factory.MenuItems.EXPECT().
		FindByID(ctx, itemID).
		Return(nil, repository.ErrMenuItemNotFound)

	details, err := f.service.GetOrderDetails(ctx, userID, order.ID)
	require.NoError(t, err)
	require.Len(t, details.Lines, 1)
	assert.Empty(t, details.Lines[0].MenuItemName)
	assert.True(t, details.Lines[0].MenuItemPrice.Equal(decimal.RequireFromString("8.00")))
}

func TestOrderService_UpdateOrderStatus_PaidOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleCustomer}
	order := &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusPending, Paid: true}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)
	f.tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, order.RestaurantID).
		Return(&entity.RestaurantStaff{UserID: caller.UserID, RestaurantID: order.RestaurantID, Role: entity.StaffRoleAdmin}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, order).
		Return(nil)

	updated, err := f.service.UpdateOrderStatus(ctx, caller, order.ID, entity.OrderStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, updated.Status)
}

func TestOrderService_UpdateOrderStatus_UnpaidCartOnlyCancellable(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	order := &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusPending, Paid: false}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)

	_, err := f.service.UpdateOrderStatus(ctx, caller, order.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateOrderStatus_UnpaidCartCancel(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	order := &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusPending, Paid: false}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, order).
		Return(nil)

	updated, err := f.service.UpdateOrderStatus(ctx, caller, order.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_UpdateOrderStatus_TerminalState(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	order := &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusDelivered, Paid: true}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)

	_, err := f.service.UpdateOrderStatus(ctx, caller, order.ID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestOrderService_UpdateOrderStatus_NonAdminStaff(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	caller := usecase.Principal{UserID: uuid.New(), Role: entity.RoleCustomer}
	order := &entity.Order{ID: uuid.New(), RestaurantID: uuid.New(), Status: entity.OrderStatusPending, Paid: true}

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, order.ID).
		Return(order, nil)
	f.tx.Factory.Staff.EXPECT().
		FindByUserAndRestaurant(ctx, caller.UserID, order.RestaurantID).
		Return(&entity.RestaurantStaff{Role: entity.StaffRoleStaff}, nil)

	_, err := f.service.UpdateOrderStatus(ctx, caller, order.ID, entity.OrderStatusAccepted)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestOrderService_MarkOrderPaid(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: uuid.New(),
		Status:       entity.OrderStatusPending,
		Items: []entity.OrderItem{
			{Quantity: 1, UnitPrice: decimal.RequireFromString("7.00")},
		},
	}

	f.lockCart(ctx, userID, cart)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, cart).
		Return(nil)

	sealed, err := f.service.MarkOrderPaid(ctx, userID, cart.ID)
	require.NoError(t, err)
	assert.True(t, sealed.Paid)
}

func TestOrderService_MarkOrderPaid_EmptyCart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: uuid.New(), Status: entity.OrderStatusPending}

	f.lockCart(ctx, userID, cart)

	_, err := f.service.MarkOrderPaid(ctx, userID, cart.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_MarkOrderPaid_AlreadyPaid(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: userID, Paid: true}, nil)

	_, err := f.service.MarkOrderPaid(ctx, userID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotMutable)
}

func TestOrderService_AddOrderItem_CancelledOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			UserID:       userID,
			RestaurantID: uuid.New(),
			Status:       entity.OrderStatusCancelled,
			Paid:         false,
		}, nil)

	_, err := f.service.AddOrderItem(ctx, userID, &usecase.AddOrderItemInput{
		OrderID:    orderID,
		MenuItemID: uuid.New(),
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotMutable)
}

func TestOrderService_MarkOrderPaid_CancelledOrder(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	f.tx.Factory.Orders.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:           orderID,
			UserID:       userID,
			RestaurantID: uuid.New(),
			Status:       entity.OrderStatusCancelled,
			Paid:         false,
			Items: []entity.OrderItem{
				{Quantity: 1, UnitPrice: decimal.RequireFromString("7.00")},
			},
		}, nil)

	_, err := f.service.MarkOrderPaid(ctx, userID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotMutable)
}

// Cancelling an unpaid cart frees the one-open-cart slot for the pair, so
// the next PlaceOrder starts over instead of resurrecting the cancelled row.
func TestOrderService_PlaceOrder_AfterCancellationStartsFreshCart(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	freshCartID := uuid.New()

	item := f.orderableItem(ctx, restaurantID, "6.00")

	// The cart lookup is scoped to pending unpaid orders, so the
	// cancelled cart no longer matches.
	f.tx.Factory.Orders.EXPECT().
		FindCartForUpdate(ctx, userID, restaurantID).
		Return(nil, repository.ErrOrderNotFound)
	f.numberGen.EXPECT().Generate().Return("FRESH00001", nil)
	f.tx.Factory.Orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = freshCartID
		}).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(nil)
	f.tx.Factory.OrderItems.EXPECT().
		ListByOrder(ctx, freshCartID).
		Return([]*entity.OrderItem{
			{OrderID: freshCartID, MenuItemID: item.ID, Quantity: 1, UnitPrice: item.Price},
		}, nil)
	f.tx.Factory.Orders.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := f.service.PlaceOrder(ctx, userID, &usecase.PlaceOrderInput{
		RestaurantID: restaurantID,
		MenuItemID:   item.ID,
		Quantity:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, freshCartID, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.Paid)
}

func TestOrderService_AddOrderItem_QuantityConstraintViolation(t *testing.T) {
	f := newOrderServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := &entity.Order{ID: uuid.New(), UserID: userID, RestaurantID: uuid.New(), Status: entity.OrderStatusPending}

	item := f.orderableItem(ctx, cart.RestaurantID, "3.50")
	f.lockCart(ctx, userID, cart)
	f.tx.Factory.OrderItems.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.OrderItem")).
		Return(repository.ErrInvalidQuantity)

	_, err := f.service.AddOrderItem(ctx, userID, &usecase.AddOrderItemInput{
		OrderID:    cart.ID,
		MenuItemID: item.ID,
		Quantity:   1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
