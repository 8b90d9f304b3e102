package bankclient

import "fmt"

// HTTPError is returned when the API responds with a non-2xx status.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.StatusText)
}

// NetworkError is returned when the request never produced a response,
// e.g. DNS failure, connection refused, or a transport-level timeout.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() error { return e.Cause }
