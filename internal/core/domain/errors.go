package domain

import "errors"

// Domain errors represent contract violations at the ingestion boundary.
// These are distinct from infrastructure errors (file IO, database).
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotMessage indicates an event that is not tagged as a message.
	// Callers filter non-message events before normalisation; seeing one
	// here is a contract violation, not a skippable record.
	ErrNotMessage = errors.New("event is not a message")

	// ErrEmptyMessage indicates a message event carrying neither text nor media.
	ErrEmptyMessage = errors.New("message has no text or media")

	// ErrUnknownPeerType indicates a participant kind the source does not define.
	// Unlike unknown media, an unknown peer cannot be rendered as a placeholder,
	// so processing of the current file aborts.
	ErrUnknownPeerType = errors.New("unknown peer type")

	// ErrEmptySession indicates an attempt to finalise a session with zero
	// messages. Upstream filtering makes this unreachable; treat it as an
	// internal invariant violation.
	ErrEmptySession = errors.New("session has no messages")

	// ErrInvalidMetadata indicates a metadata value outside the scalar set
	// (string, integer, float, boolean) accepted by the destination store.
	ErrInvalidMetadata = errors.New("invalid metadata value")
)
