package clinic

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrConnection
	ErrValidation
	ErrAuthentication
	ErrPermissionDenied
	ErrNotFound
	ErrServer
	ErrAPI
	ErrClosed
	ErrUnexpectedResponse
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// Error is returned by every client call which does not succeed. Kind
// identifies the failure, and Status is the HTTP status code when a response
// was received (zero otherwise).
type Error struct {
	Kind    Err
	Status  int
	Message string
	Details map[string]any
	Body    map[string]any
	cause   error
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewError returns an error of the given kind and status. The cause may be nil.
func NewError(kind Err, status int, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
		cause:   cause,
	}
}

// KindForStatus returns the error kind for a non-success HTTP status code
func KindForStatus(status int) Err {
	switch {
	case status >= 200 && status <= 299:
		return ErrSuccess
	case status == 400:
		return ErrValidation
	case status == 401:
		return ErrAuthentication
	case status == 403:
		return ErrPermissionDenied
	case status == 404:
		return ErrNotFound
	case status >= 500 && status <= 599:
		return ErrServer
	}
	return ErrAPI
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ERR

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrConnection:
		return "connection failure"
	case ErrValidation:
		return "validation failure"
	case ErrAuthentication:
		return "authentication failure"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrNotFound:
		return "resource not found"
	case ErrServer:
		return "server failure"
	case ErrAPI:
		return "api failure"
	case ErrClosed:
		return "client is closed"
	case ErrUnexpectedResponse:
		return "unexpected response"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ERROR

func (e *Error) Error() string {
	message := e.Message
	if message == "" {
		message = e.Kind.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("[%d] %s", e.Status, message)
	}
	if e.cause != nil && message != e.cause.Error() {
		return fmt.Sprintf("%s: %v", message, e.cause)
	}
	return message
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches the error kind, so errors.Is(err, ErrNotFound) works for any
// *Error of that kind
func (e *Error) Is(target error) bool {
	if kind, ok := target.(Err); ok {
		return e.Kind == kind
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////
// HELPERS

// KindOf returns the kind of err, ErrSuccess when err is nil, or ErrAPI
// when err was not produced by this package
func KindOf(err error) Err {
	if err == nil {
		return ErrSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var kind Err
	if errors.As(err, &kind) {
		return kind
	}
	return ErrAPI
}
