package api

import "fmt"

// NetworkError wraps a transport failure or timeout. The caller may retry;
// this layer never retries on its own.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError covers a non-200 status and the tunnel-warning case where a
// 200 response carries HTML instead of JSON.
type ServerError struct {
	URL        string
	StatusCode int
	Hint       string
}

func (e *ServerError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("server error from %s (status %d): %s", e.URL, e.StatusCode, e.Hint)
	}
	return fmt.Sprintf("server error from %s (status %d)", e.URL, e.StatusCode)
}
