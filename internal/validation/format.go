// Package validation has helpers for user-facing validation messages.
package validation

import (
	"fmt"
	"strings"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// FormatInvalidValueError wraps base with the rejected value and the list
// of accepted ones.
func FormatInvalidValueError[T ~string](base error, got T, valid []T) error {
	return fmt.Errorf("%w: %q (valid: %s)", base, string(got), FormatValidValues(valid))
}
