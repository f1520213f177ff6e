// Package checkpoint defines domain-specific errors
package checkpoint

import "errors"

// Domain errors - DRY principle: defined once, used everywhere
var (
	ErrInvalidCheckpointID = errors.New("invalid checkpoint ID")
	ErrInvalidThreadID     = errors.New("invalid thread ID")
	ErrInvalidState        = errors.New("checkpoint state has no valid status")
	ErrCheckpointNotFound  = errors.New("checkpoint not found")

	// Persistence errors
	ErrSaveFailed = errors.New("failed to save checkpoint")
	ErrLoadFailed = errors.New("failed to load checkpoint")
)
