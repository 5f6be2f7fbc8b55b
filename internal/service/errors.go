package service

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
