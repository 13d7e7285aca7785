package core

import "github.com/pkg/errors"

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError is returned when an input is rejected; Fields, when set, are shown per field.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return "invalid input"
	}
	return err.Err.Error()
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

// shutdownError marks a failure the process cannot recover from, such as a lost session store.
type shutdownError struct {
	op  string
	err error
}

// NewShutdownError wraps err, raised while doing op, as unrecoverable.
func NewShutdownError(op string, err error) error {
	return &shutdownError{op: op, err: err}
}

func (s *shutdownError) Error() string {
	if s.err == nil {
		return s.op
	}
	return s.op + ": " + s.err.Error()
}

func (s *shutdownError) Unwrap() error {
	return s.err
}

// IsShutdown reports whether err, or any error it wraps, is unrecoverable.
func IsShutdown(err error) bool {
	var s *shutdownError
	return errors.As(err, &s)
}
