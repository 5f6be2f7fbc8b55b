package trello

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by NewClient when the key or token is empty.
var ErrMissingCredentials = errors.New("trello: api key and token are required")

// FetchError reports a failed upstream call: a non-2xx response or a transport fault.
// StatusCode is 0 for transport faults.
type FetchError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("trello %s: %v", e.Op, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("trello %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("trello %s: status %d", e.Op, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable is always true. The caller decides whether to try again.
func (e *FetchError) Retryable() bool {
	return true
}

// IsFetchError reports whether err wraps a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
