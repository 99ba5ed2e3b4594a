package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNetwork matches request errors where no response was received.
	ErrNetwork = errors.New("network error")
	// ErrDecode matches request errors where the body was not valid JSON.
	ErrDecode = errors.New("decode error")
	// ErrInvalid matches ValidationError.
	ErrInvalid = errors.New("invalid record")
)

// ErrorKind classifies a RequestError.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return ErrNetwork.Error()
	case KindDecode:
		return ErrDecode.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// RequestError is returned when a request could not complete or its
// response could not be decoded.
type RequestError struct {
	Kind   ErrorKind
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.URL, e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is matches ErrNetwork or ErrDecode according to Kind.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// APIError is a well-formed response whose envelope reports failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, msg)
}

// NotFound reports whether the API answered 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// FieldError is one rejected field of a record.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of a record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
