package store

import "context"

// HealthStore provides health check operations
type HealthStore interface {
	// CheckConnectivity verifies document store connectivity. The context
	// bounds the probe; a deadline overrun counts as a failed check.
	CheckConnectivity(ctx context.Context) error
}
