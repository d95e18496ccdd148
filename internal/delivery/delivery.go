// Package delivery groups the transports that expose the tracking core.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoints.
type Delivery interface {
	Serve(ctx context.Context) error
}
