package core

import "errors"

var (
	// ErrInsufficientCapacity indicates the reserved overhead alone meets or
	// exceeds the window capacity. No amount of truncation can help; the
	// caller must reduce overhead or pick a larger window before retrying.
	ErrInsufficientCapacity = errors.New("window overhead exceeds capacity")

	// ErrInvalidStrategy indicates an unrecognized strategy configuration
	// value. It is recovered locally by falling back to intelligent
	// truncation and is surfaced only so the fallback can be logged.
	ErrInvalidStrategy = errors.New("invalid compaction strategy")

	// ErrEstimation indicates a token estimator collaborator failed. It is
	// recovered locally via the character-count heuristic, never fatal.
	ErrEstimation = errors.New("token estimation unavailable")
)
