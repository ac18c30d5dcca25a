// Package common defines shared constants and sentinel errors used across
// the console layers. Callers should use errors.Is to match these values.
package common

import "errors"

// InvalidCredentialsMessage is shown to the operator verbatim when a login
// attempt does not match any built-in account.
const InvalidCredentialsMessage = "Invalid username or password"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (required fields, malformed input).
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrInvalidCredentials = errors.New(InvalidCredentialsMessage)

	// ErrInvalidToken is returned for tokens that cannot be decoded or
	// whose signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// ErrUnknownPage is returned for navigation targets outside the page enum.
	ErrUnknownPage = errors.New("unknown page")
)
