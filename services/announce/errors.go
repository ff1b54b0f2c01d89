package announce

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamData means STRATZ reported errors or left out a required field.
	ErrUpstreamData = errors.New("upstream data error")
	// ErrDispatch means the announcement could not be delivered.
	ErrDispatch = errors.New("dispatch failed")
)

// MissingFieldError names the first required field found absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrUpstreamData
}

func missing(format string, args ...any) error {
	return &MissingFieldError{Field: fmt.Sprintf(format, args...)}
}
