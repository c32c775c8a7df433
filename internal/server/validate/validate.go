// Package validate contains the pure field validators applied to submitted
// form values before any mutation is attempted.
//
// Each validator returns a human-readable message, or the empty string when
// the value is acceptable. Validators never return errors: callers collect
// the messages per field and treat any non-empty entry as overall failure.
package validate

import "regexp"

const (
	minPasswordLen = 6
	minNameLen     = 3
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks for a conventional local@domain address.
func Email(value string) string {
	if !emailPattern.MatchString(value) {
		return "Please enter a valid email address"
	}
	return ""
}

// Password enforces the minimum password length.
func Password(value string) string {
	if len(value) < minPasswordLen {
		return "Please enter a password that is at least 6 characters long"
	}
	return ""
}

// Name enforces the minimum length for name-like fields (first name, last
// name, department).
func Name(value string) string {
	if len(value) < minNameLen {
		return "Please enter a value that is at least 3 characters long"
	}
	return ""
}
