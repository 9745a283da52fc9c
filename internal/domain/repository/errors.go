package repository

import "errors"

// ErrInvalidReference is returned when a write points at a row that does
// not exist, surfaced from a foreign key violation. Existence checks made
// earlier in the transaction can go stale, so writes still map this.
var ErrInvalidReference = errors.New("referenced record does not exist")
