package scraper

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic enough to express every failure mode in the
// engine while still letting callers branch on the class of failure. EFETCH,
// EPARSE and EINFERENCE identify which external collaborator failed; ENOTFOUND
// is the only code mapped to a distinct status at the HTTP boundary.
const (
	EFETCH     = "fetch"     // page could not be retrieved
	EPARSE     = "parse"     // response could not be parsed as HTML
	EINFERENCE = "inference" // inference service unreachable or returned an invalid payload
	EINVALID   = "invalid"   // validation failed on caller input
	ENOTFOUND  = "not_found" // endpoint does not exist
	EINTERNAL  = "internal"  // internal error
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code and a
// human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("scraper error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
