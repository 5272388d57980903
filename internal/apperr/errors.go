package apperr

import (
	"errors"
	"fmt"
)

// TransportError reports a feed or article fetch that failed, timed out or
// answered with a non-success status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error for %s: %s", e.URL, e.Err.Error())
	}
	return "transport error for " + e.URL
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewTransport(url string, err error) *TransportError {
	return &TransportError{URL: url, Err: err}
}

// ParseError reports an expected field or container missing from a parsed
// document, or a value that does not match its expected format.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "parse error: " + e.What + ": " + e.Err.Error()
	}
	return "parse error: " + e.What
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParse(what string) *ParseError {
	return &ParseError{What: what}
}

func NewParseWrap(what string, err error) *ParseError {
	return &ParseError{What: what, Err: err}
}

// ConfigError is the only error class that halts a run.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(msg string) *ConfigError {
	return &ConfigError{Message: msg}
}

func NewConfigWrap(msg string, err error) *ConfigError {
	return &ConfigError{Message: msg, Err: err}
}

// ValidationError is returned for bad client input on the API surface.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
