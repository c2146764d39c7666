package generation

import (
	"errors"
	"fmt"
)

// ConfigurationError reports missing or malformed service credentials. Its
// message is written for the person deploying the service.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return "configuration error: " + e.Message
}

// GenerationError reports a failed, timed out or empty service call
type GenerationError struct {
	Status  int
	Message string
	Err     error
}

func newGenerationError(status int, message string, err error) error {
	return &GenerationError{Status: status, Message: message, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	msg := "generation error: " + e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError reports a response body that is not a valid palette
type ParseError struct {
	Message string
	Err     error
}

func newParseError(message string, err error) error {
	return &ParseError{Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Err)
	}
	return "parse error: " + e.Message
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports unusable user input, such as a blank keyword
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError. The UI ignores
// these silently.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// UserMessage turns any generation-path error into a single message fit
// for display. Upstream response bodies never leak through.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		cfgErr   *ConfigurationError
		genErr   *GenerationError
		parseErr *ParseError
		valErr   *ValidationError
	)
	switch {
	case errors.As(err, &valErr):
		return "Enter a keyword to generate a palette."
	case errors.As(err, &cfgErr):
		return cfgErr.Message
	case errors.As(err, &parseErr):
		return "The palette service returned data in an unexpected format. Please try again."
	case errors.As(err, &genErr):
		if genErr.Message == emptyResponse {
			return "No response was received from the palette service. Please try again."
		}
		return "The palette service could not complete the request. Please try again."
	default:
		return "Something went wrong while generating the palette."
	}
}
