package constants

import (
	"fmt"
	"net/http"
	"strings"
)

// CodedError is a domain error carrying the HTTP status it should surface as.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound          = NewCodedError(http.StatusNotFound, "not found")
	ErrCountryNotFound     = NewCodedError(http.StatusNotFound, "Country not found")
	ErrImageNotFound       = NewCodedError(http.StatusNotFound, "Summary image not found. Please refresh countries first.")
	ErrUpstreamUnavailable = NewCodedError(http.StatusServiceUnavailable, "External data source unavailable")
)

// FieldViolation names one invalid or missing input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates input violations. Missing required fields and
// bad query params surface as 400, other schema violations as 422.
type ValidationError struct {
	code       int
	violations []FieldViolation
}

func NewValidationError(code int, violations ...FieldViolation) *ValidationError {
	return &ValidationError{code: code, violations: violations}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Code() int {
	return e.code
}

func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}
