// Package entity contains the core business objects of the project.
package entity

// Role represents the platform-level role of an account.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "customer"
	// RoleDriver indicates a delivery driver account.
	RoleDriver Role = "driver"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

// StaffRole represents the role a user holds within a single restaurant.
// It is always scoped to a (user, restaurant) pair, never global.
type StaffRole string

const (
	// StaffRoleStaff indicates regular restaurant staff.
	StaffRoleStaff StaffRole = "staff"
	// StaffRoleAdmin indicates a restaurant administrator who may manage
	// the restaurant's catalog.
	StaffRoleAdmin StaffRole = "admin"
)

// String returns the string representation of the StaffRole.
func (r StaffRole) String() string {
	return string(r)
}

// IsValid checks if the StaffRole is a valid value.
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleStaff, StaffRoleAdmin:
		return true
	default:
		return false
	}
}
