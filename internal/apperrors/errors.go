// Package apperrors defines the error taxonomy shared by repositories,
// services, and handlers. Callers wrap these sentinels with fmt.Errorf and
// %w so handlers can classify failures with errors.Is without string
// matching, and raw store errors never leak to clients.
package apperrors

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate registration (email or username
	// already taken).
	ErrConflict = errors.New("already exists")

	// ErrIntegrity indicates the store rejected a write, typically because a
	// referenced foreign key does not exist.
	ErrIntegrity = errors.New("integrity violation")

	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials covers every authentication failure: unknown
	// user, wrong password, and expired, malformed, or revoked tokens. A
	// single sentinel keeps the responses indistinguishable so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
