package cldr

import (
	"errors"
	"fmt"
)

// ErrNoSource indicates the catalog was configured without a data source.
var ErrNoSource = errors.New("cldr: no data source configured")

// NotFoundError reports a locale or document absent from the configured source.
type NotFoundError struct {
	Locale string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cldr: locale %q not found", e.Locale)
}

// ValidationError reports a required module missing from a raw locale document.
type ValidationError struct {
	Locale string
	Module string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cldr: locale %q is missing required module %q", e.Locale, e.Module)
}

// UnknownNumberSystemError reports a number system reference that resolves to
// neither a system type nor a system name for the locale.
type UnknownNumberSystemError struct {
	Reference string
}

func (e *UnknownNumberSystemError) Error() string {
	return fmt.Sprintf("cldr: unknown number system %q", e.Reference)
}

// UnknownNumberSystemTypeError reports a string that does not name a known
// number system type.
type UnknownNumberSystemTypeError struct {
	Value string
}

func (e *UnknownNumberSystemTypeError) Error() string {
	return fmt.Sprintf("cldr: unknown number system type %q", e.Value)
}

// ConfigurationError reports a malformed locale name pattern.
type ConfigurationError struct {
	Pattern string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cldr: invalid locale pattern %q: %v", e.Pattern, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
