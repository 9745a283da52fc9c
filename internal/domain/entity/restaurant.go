// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Restaurant represents a single restaurant on the platform.
type Restaurant struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the restaurant.
	Name        string          // Unique display name.
	Description string          // Free-text description shown to customers.
	Address     string          // The restaurant's street address.
	PhoneNumber string          // Contact phone number.
	Email       string          // Unique contact email.
	OpeningTime TimeOfDay       // Daily opening time.
	ClosingTime TimeOfDay       // Daily closing time.
	Status      LifecycleStatus // active or archived; archived restaurants are hidden from customers.
	Rating      decimal.Decimal // One-decimal-place rating in [0.0, 9.9].
	CreatorID   uuid.UUID       // The platform admin who registered the restaurant.
	Cuisines    []Cuisine       // The cuisines this restaurant serves.
	CreatedAt   time.Time       // Timestamp of when the restaurant was registered.
	UpdatedAt   time.Time       // Timestamp of the last modification.
}

// IsOpenAt reports whether the restaurant is open at the given wall-clock time.
// Only the time-of-day component of t is considered.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	now := TimeOfDayFrom(t)

	return !now.Before(r.OpeningTime) && !now.After(r.ClosingTime)
}

// HasCuisine reports whether the restaurant serves the given cuisine.
func (r *Restaurant) HasCuisine(cuisineID uuid.UUID) bool {
	for _, c := range r.Cuisines {
		if c.ID == cuisineID {
			return true
		}
	}

	return false
}

// Cuisine is a named cuisine category referenced by restaurants and menus.
type Cuisine struct {
	ID   uuid.UUID // The Global Unique Identifier (GUID) for the cuisine.
	Name string    // Unique cuisine name, e.g., "Italian".
}

// RestaurantStaff links a user to a restaurant with a per-restaurant role.
// At most one staff record exists per (user, restaurant) pair.
type RestaurantStaff struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the staff record.
	UserID       uuid.UUID  // The linked user account.
	RestaurantID uuid.UUID  // The restaurant this record grants access to.
	Role         StaffRole  // staff or admin, scoped to this restaurant only.
	LastLoginAt  *time.Time // Timestamp of the most recent staff login, nil before the first.
	CreatedAt    time.Time  // Timestamp of when the staff record was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}

// IsAdmin reports whether this staff record grants restaurant admin rights.
func (s *RestaurantStaff) IsAdmin() bool {
	return s.Role == StaffRoleAdmin
}
