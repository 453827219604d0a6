// Package common defines shared constants and sentinel errors used across
// the gratitude client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Crypto errors.
	ErrKeyDerivation = errors.New("key derivation failed")
	ErrDecryption    = errors.New("cannot decrypt entry")

	// Remote API errors. ErrNotFound is a valid state (no remote profile
	// yet), not a failure; callers must never collapse it into
	// ErrRemoteUnavailable.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	ErrNotFound          = errors.New("not found")

	// Journal errors.
	ErrAlreadyExists = errors.New("already exists")
)
