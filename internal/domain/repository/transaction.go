package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// RestaurantRepo returns a RestaurantRepository bound to the current transaction.
	RestaurantRepo() RestaurantRepository

	// CuisineRepo returns a CuisineRepository bound to the current transaction.
	CuisineRepo() CuisineRepository

	// StaffRepo returns a StaffRepository bound to the current transaction.
	StaffRepo() StaffRepository

	// MenuRepo returns a MenuRepository bound to the current transaction.
	MenuRepo() MenuRepository

	// MenuItemRepo returns a MenuItemRepository bound to the current transaction.
	MenuItemRepo() MenuItemRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// OrderItemRepo returns an OrderItemRepository bound to the current transaction.
	OrderItemRepo() OrderItemRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository
}
