package editor

import "fmt"

const maxErrorBody = 512

// ServiceError is a non-2xx response from the editing service. The run
// keeps going when one of these occurs for a single post.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("editing service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("editing service returned status %d: %s", e.StatusCode, truncate(e.Body, maxErrorBody))
}

// TransportError is a failure to reach the editing service at all, such
// as a timeout, DNS failure, or connection reset.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("editing service unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
