// Package common defines shared sentinel errors used across the service and
// repository layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors.
	ErrInternal           = errors.New("internal error")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Kudo creation errors, surfaced verbatim to the form.
	ErrMessageRequired   = errors.New("Please provide a message.")
	ErrRecipientRequired = errors.New("No recipient found...")
)
