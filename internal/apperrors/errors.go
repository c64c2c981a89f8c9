package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a business rule violation on a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrRetryable indicates a transient store failure (lock or statement timeout,
// deadlock, serialization failure). The whole operation may be retried.
var ErrRetryable = errors.New("temporary failure, please retry")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// kindError reads as its own message but matches kind under errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Sentinel builds a package-level error value with its own message that is
// classified as kind (one of the errors above).
func Sentinel(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
