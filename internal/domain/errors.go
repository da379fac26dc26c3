package domain

import "fmt"

// ValidationError is a local precondition failure detected before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NetworkError reports a failed round trip to the backend: a transport error,
// a non-2xx status or an undecodable body. The message names only the resource;
// status codes and transport details are reachable through Unwrap.
type NetworkError struct {
	Resource string
	Op       string
	cause    error
}

func NewNetworkError(op, resource string, cause error) *NetworkError {
	return &NetworkError{Resource: resource, Op: op, cause: cause}
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to %s %s", e.Op, e.Resource)
}

// Unwrap exposes the transport-level cause for logging.
func (e *NetworkError) Unwrap() error { return e.cause }
