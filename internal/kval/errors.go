package kval

import (
	"errors"
	"fmt"
)

// Error is a failure raised by a value operation or a bridge call.
//
// Error kinds:
//   - Type mismatch: operand kinds or element types are not accepted
//   - Precondition: operand shape is right but a constraint (length) fails
//   - Load: a bridge or one of its symbols could not be resolved
//
// Message is the verbatim diagnostic the host would see; assertions
// compare against it exactly.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is the host-visible diagnostic.
	Message string

	// Symbol names the unresolved symbol (load errors only).
	Symbol string
}

// ErrorCode categorizes value errors.
type ErrorCode string

const (
	// ErrCodeTypeMismatch indicates unsupported operand kinds or types.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodePrecondition indicates a violated shape constraint.
	ErrCodePrecondition ErrorCode = "PRECONDITION"

	// ErrCodeLoad indicates an unresolvable bridge or symbol.
	ErrCodeLoad ErrorCode = "LOAD"
)

// Diagnostics produced by the value operations.
const (
	MsgConcatMismatch  = "not a list or types do not match"
	MsgInvalidType     = "invalid type"
	MsgListTooShort    = "this list is not long enough"
	MsgNotSimpleList   = "self is not a simple list"
	MsgEnumWithoutDom  = "Enum list must have exactly one source per atom"
	MsgIndexOutOfRange = "index out of bounds"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s (symbol=%s)", e.Code, e.Message, e.Symbol)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TypeMismatch creates a type mismatch error.
func TypeMismatch(msg string) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Message: msg}
}

// Precondition creates a precondition error.
func Precondition(msg string) *Error {
	return &Error{Code: ErrCodePrecondition, Message: msg}
}

// LoadFailure creates a load error for symbol.
func LoadFailure(symbol, msg string) *Error {
	return &Error{Code: ErrCodeLoad, Message: msg, Symbol: symbol}
}

// IsTypeMismatch returns true if err is a type mismatch error.
// Uses errors.As to handle wrapped errors.
func IsTypeMismatch(err error) bool {
	return hasCode(err, ErrCodeTypeMismatch)
}

// IsPrecondition returns true if err is a precondition error.
func IsPrecondition(err error) bool {
	return hasCode(err, ErrCodePrecondition)
}

// IsLoadError returns true if err is a load error.
func IsLoadError(err error) bool {
	return hasCode(err, ErrCodeLoad)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// Diagnostic returns the host-visible message of err.
// For an *Error anywhere in the chain this is its bare Message;
// any other error falls back to err.Error().
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
