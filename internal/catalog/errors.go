package catalog

import (
	"errors"
	"fmt"
)

// ErrorType classifies catalog failures.
type ErrorType string

const (
	ErrorDuplicateKey ErrorType = "duplicate_key"
	ErrorNotFound     ErrorType = "topic_not_found"
	ErrorInvalidUnit  ErrorType = "invalid_unit"
)

// Sentinels for errors.Is. A *CatalogError matches the sentinel of its Type.
var (
	ErrDuplicateKey = errors.New("duplicate topic key")
	ErrNotFound     = errors.New("topic not found")
	ErrInvalidUnit  = errors.New("invalid content unit")
)

// CatalogError is the structured error returned by registry construction and lookup.
type CatalogError struct {
	Type    ErrorType `json:"type"`
	Key     string    `json:"key"`
	Source  string    `json:"source,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's type.
func (e *CatalogError) Is(target error) bool {
	switch e.Type {
	case ErrorDuplicateKey:
		return target == ErrDuplicateKey
	case ErrorNotFound:
		return target == ErrNotFound
	case ErrorInvalidUnit:
		return target == ErrInvalidUnit
	}
	return false
}

func duplicateKeyError(key, source, previous string) *CatalogError {
	msg := fmt.Sprintf("topic key already registered: %q", key)
	if source != "" || previous != "" {
		msg = fmt.Sprintf("topic key %q from source %q already registered by source %q", key, source, previous)
	}
	return &CatalogError{
		Type:    ErrorDuplicateKey,
		Key:     key,
		Source:  source,
		Message: msg,
	}
}

func notFoundError(key string) *CatalogError {
	return &CatalogError{
		Type:    ErrorNotFound,
		Key:     key,
		Message: fmt.Sprintf("topic not found: %q", key),
	}
}

// IsNotFound reports whether err is (or wraps) a not-found catalog error.
func IsNotFound(err error) bool {
	return hasType(err, ErrorNotFound)
}

// IsDuplicateKey reports whether err is (or wraps) a duplicate-key catalog error.
func IsDuplicateKey(err error) bool {
	return hasType(err, ErrorDuplicateKey)
}

func hasType(err error, t ErrorType) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Type == t
	}
	return false
}
