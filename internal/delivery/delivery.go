// Package delivery defines the transport-layer contract shared by the API and
// worker servers.
package delivery

import "context"

// Delivery is a long-running transport server started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
