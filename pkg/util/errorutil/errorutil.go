package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes exposed in API responses.
const (
	CodeValidation  = "VALIDATION_FAILED"
	CodeNotFound    = "NOT_FOUND"
	CodeInvalidRule = "INVALID_RULES"
	CodeUnavailable = "SERVICE_UNAVAILABLE"
	CodeTimeout     = "REQUEST_TIMEOUT"
	CodeInternal    = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

// NewInvalidRules reports a rule table that failed validation.
func NewInvalidRules(err error, details map[string]any) error {
	de := NewDomainError(CodeInvalidRule, "priority rules are invalid", http.StatusUnprocessableEntity, details)
	de.Err = err
	return de
}

func NewUnavailable(message string, err error) error {
	de := NewDomainError(CodeUnavailable, message, http.StatusServiceUnavailable, nil)
	de.Err = err
	return de
}

func NewTimeout() error {
	return NewDomainError(CodeTimeout, "request timed out", http.StatusRequestTimeout, nil)
}

func NewInternalError(err error) error {
	de := NewDomainError(CodeInternal, "internal server error", http.StatusInternalServerError, nil)
	de.Err = err
	return de
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return NewInternalError(err).(*DomainError)
}
