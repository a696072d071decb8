package models

import (
	"errors"
	"fmt"
)

// ErrorValidation reports a missing or malformed field in a request. Field
// and Rule name the first failing field and the check it failed, when known.
type ErrorValidation struct {
	Message string
	Field   string
	Rule    string
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorNotFound reports an unknown id, slug or key.
type ErrorNotFound struct {
	Resource string
}

func (e ErrorNotFound) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrorConflict reports a request that cannot run in the current state.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer wraps an unexpected failure. Its cause is logged, never
// sent to clients.
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var nf ErrorNotFound
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve ErrorValidation
	return errors.As(err, &ve)
}
