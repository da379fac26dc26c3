package ports

import "context"

// Contract for a single round trip to the planner backend.
type Gateway interface {
	// Send issues method on path with an optional JSON body and decodes the
	// response into out when out is non-nil. Failures are *domain.NetworkError.
	Send(ctx context.Context, method, path string, body, out any) error
}
