// Package lifecycle holds shared timings for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a serving surface.
const DefaultTimeout = 10 * time.Second
