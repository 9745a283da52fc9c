// Package entity contains the core business objects of the project.
package entity

// LifecycleStatus is the explicit lifecycle state of a catalog entity.
// Archiving hides an entity from customers while keeping it visible to
// restaurant admins; deletion removes the row entirely. The two are
// separate, deliberate transitions rather than one overloaded flag.
type LifecycleStatus string

const (
	// LifecycleActive marks an entity as visible to customers.
	LifecycleActive LifecycleStatus = "active"
	// LifecycleArchived marks an entity as hidden from customers but
	// retained for administration.
	LifecycleArchived LifecycleStatus = "archived"
)

// String returns the string representation of the LifecycleStatus.
func (s LifecycleStatus) String() string {
	return string(s)
}

// IsValid checks if the LifecycleStatus is a valid value.
func (s LifecycleStatus) IsValid() bool {
	switch s {
	case LifecycleActive, LifecycleArchived:
		return true
	default:
		return false
	}
}

// IsActive reports whether the entity is visible to customers.
func (s LifecycleStatus) IsActive() bool {
	return s == LifecycleActive
}
