// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is one serving surface of a binary (HTTP server, scheduler).
// Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
