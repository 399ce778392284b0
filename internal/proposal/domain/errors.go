package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFields   = errors.New("all fields are required")
	ErrEmptyCompletion = errors.New("completion returned no choices")
)

// ValidationError lists the request fields that were missing or blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrMissingFields }

// UpstreamError wraps any failure of the chat-completion call. Its message is
// for server logs only.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
