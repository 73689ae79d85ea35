package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrUnknownStage     = errors.New("unknown stage")
	ErrInvalidHook      = errors.New("invalid hook registration")
	ErrInputTooLarge    = errors.New("input too large")
	ErrStoreUnavailable = errors.New("store unavailable")
)
