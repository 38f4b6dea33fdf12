package domain

import "errors"

// Sentinel errors for the generator core. Callers classify failures with
// errors.Is; lower layers wrap these with context via fmt.Errorf and %w.
var (
	// ErrUnknownPersona is returned when a requested persona name is not
	// present in the registry. Generation aborts before any output.
	ErrUnknownPersona = errors.New("unknown persona")

	// ErrInvalidRange is returned for an inverted date range or an
	// inverted amount range. Both are configuration errors.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnknownAccount is returned when a rule's account reference does
	// not resolve to an account of the owning persona.
	ErrUnknownAccount = errors.New("unknown account reference")

	// ErrArtifactWrite is returned when the final write of a completed
	// artifact fails. The in-memory result is discarded; no partial file
	// is left behind.
	ErrArtifactWrite = errors.New("artifact write failed")
)
