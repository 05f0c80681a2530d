// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a server that can be started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
