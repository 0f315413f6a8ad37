// Package greet formats the greeting phrases shown by the demo pages.
// It has no I/O so it can be reused outside the browser.
package greet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyUppercase is returned when an uppercase transform would not
// change its input.
var ErrAlreadyUppercase = errors.New("already uppercase")

// UppercaseError reports the name that was rejected by FormatUpperHelloPhrase.
type UppercaseError struct {
	Name string
}

// Error implements the error interface.
func (e *UppercaseError) Error() string {
	return fmt.Sprintf("Name `%s` is already uppercase.", e.Name)
}

// Unwrap lets errors.Is match ErrAlreadyUppercase.
func (e *UppercaseError) Unwrap() error {
	return ErrAlreadyUppercase
}

// FormatHelloPhrase returns "Hello <name>!".
func FormatHelloPhrase(name string) string {
	return fmt.Sprintf("Hello %s!", name)
}

// FormatUpperHelloPhrase returns the greeting with the name uppercased.
// A name that is already uppercase (uppercasing leaves it unchanged) is
// rejected with an *UppercaseError.
func FormatUpperHelloPhrase(name string) (string, error) {
	upper := strings.ToUpper(name)
	if upper == name {
		return "", &UppercaseError{Name: name}
	}
	return FormatHelloPhrase(upper), nil
}
