package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCorpus indicates a corpus payload that fails structural
	// validation. The previously indexed corpus, if any, stays active.
	ErrInvalidCorpus = errors.New("invalid corpus")

	// ErrNotReady indicates the engine has no successfully indexed
	// corpus. Callers must not attempt queries until a load succeeds.
	ErrNotReady = errors.New("engine not ready")

	// ErrBuildInProgress indicates an index build is already running.
	// Concurrent load attempts must not duplicate index construction.
	ErrBuildInProgress = errors.New("index build in progress")

	// ErrInvalidSettings indicates engine settings that fail validation.
	ErrInvalidSettings = errors.New("invalid engine settings")
)
