package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func openingHours(opening, closing TimeOfDay) *Restaurant {
	return &Restaurant{OpeningTime: opening, ClosingTime: closing}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	r := openingHours(TimeOfDay{Hour: 9, Minute: 0}, TimeOfDay{Hour: 22, Minute: 0})

	assert.False(t, r.IsOpenAt(at(8, 59)))
	assert.True(t, r.IsOpenAt(at(9, 0)), "opening time is inclusive")
	assert.True(t, r.IsOpenAt(at(12, 30)))
	assert.True(t, r.IsOpenAt(at(22, 0)), "closing time is inclusive")
	assert.False(t, r.IsOpenAt(at(22, 1)))
}

func TestRestaurant_HasCuisine(t *testing.T) {
	served := Cuisine{ID: uuid.New(), Name: "Thai"}
	r := &Restaurant{Cuisines: []Cuisine{served}}

	assert.True(t, r.HasCuisine(served.ID))
	assert.False(t, r.HasCuisine(uuid.New()))
}

func TestRestaurantStaff_IsAdmin(t *testing.T) {
	admin := &RestaurantStaff{Role: StaffRoleAdmin}
	staff := &RestaurantStaff{Role: StaffRoleStaff}

	assert.True(t, admin.IsAdmin())
	assert.False(t, staff.IsAdmin())
}

func TestUser_CanLogin(t *testing.T) {
	u := &User{IsActive: true}
	assert.True(t, u.CanLogin())

	u.IsActive = false
	assert.False(t, u.CanLogin())
}
