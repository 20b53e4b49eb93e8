package api

import "fmt"

// StatusError is a non-2xx (or success=false) server response. Message and
// FieldErrors carry whatever the server put in the envelope; both may be
// empty for bodyless failures.
type StatusError struct {
	Code        int
	Message     string
	FieldErrors map[string]string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}
