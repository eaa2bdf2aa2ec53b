package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidPrice = errors.New("invalid price")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports which field of a confirm request was rejected.
type ValidationError struct {
	Field string // "name" or "price"
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q", e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Err }
