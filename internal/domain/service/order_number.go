package service

// OrderNumberGenerator produces opaque public identifiers for orders.
// Generated numbers carry no ordering or volume information.
type OrderNumberGenerator interface {
	// Generate returns a new order number.
	Generate() (string, error)
}
