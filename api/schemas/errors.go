package schemas

import "errors"

// Error kinds shared across the core. Every failure is wrapped around exactly
// one of these sentinels so callers can branch with errors.Is without parsing
// messages. All errors surface at the point of detection; no layer retries or
// silently recovers.
var (
	// ErrValidation marks a value that fails a domain constraint, e.g. a
	// color component outside [0,255] or a pose entry missing x/y/z.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a name-based lookup with no matching entry.
	ErrNotFound = errors.New("not found")

	// ErrUsage marks an operation invoked before a required precedent step,
	// e.g. a named size before a descriptor.
	ErrUsage = errors.New("usage order violated")

	// ErrBadInput marks an input of an unsupported kind, e.g. a setup entry
	// that is neither a mapping nor a prototype name.
	ErrBadInput = errors.New("unsupported input")

	// ErrBackend wraps failures surfaced by a construction or manipulation
	// strategy. Backend semantics are opaque here, so the cause is passed
	// through unmasked.
	ErrBackend = errors.New("backend failure")
)
