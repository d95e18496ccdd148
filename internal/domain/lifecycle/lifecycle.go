// Package lifecycle holds shared start/stop timing for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
