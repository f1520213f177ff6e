// Package checkpoint provides checkpoint persistence interfaces
package checkpoint

import "context"

// Saver interface for checkpoint persistence (DIP - Dependency Inversion)
// Implementations keep exactly one checkpoint per thread id: Save
// overwrites, Load returns the latest. A persistence failure is fatal to
// the calling operation and must be propagated, not swallowed.
// PRINCIPLES:
// - ISP: Interface segregation with ≤5 methods
// - DIP: Core domain depends on interface, not implementations
// - SRP: Single responsibility - checkpoint persistence
type Saver interface {
	// Save persists or overwrites the latest checkpoint for its thread.
	Save(ctx context.Context, cp *Checkpoint) error

	// Load retrieves the latest checkpoint for a thread, or
	// ErrCheckpointNotFound.
	Load(ctx context.Context, threadID string) (*Checkpoint, error)

	// Exists cheaply reports whether a checkpoint is stored for a
	// thread, for validating resume/action requests.
	Exists(ctx context.Context, threadID string) (bool, error)

	// Delete removes the checkpoint for a thread.
	Delete(ctx context.Context, threadID string) error
}
