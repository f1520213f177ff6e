// Package checkpoint provides the core checkpoint domain entities and interfaces
// following Clean Architecture principles with zero external dependencies.
package checkpoint

import (
	"time"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// Checkpoint is the immutable snapshot of one thread: its state plus the
// id of the next node to run. Only the latest checkpoint per thread is
// retained; each save overwrites the previous one. An empty NextNode
// means the thread is terminal until restarted.
// PRINCIPLES:
// - KISS: Simple struct with clear fields
// - SRP: Only responsible for checkpoint data structure
type Checkpoint struct {
	ID        string            `json:"id"`
	ThreadID  string            `json:"thread_id"`
	State     state.ThreadState `json:"state"`
	NextNode  string            `json:"next_node,omitempty"`
	Step      int               `json:"step"`
	Timestamp time.Time         `json:"timestamp"`
}

// Terminal reports whether the thread has no next node to run.
func (c *Checkpoint) Terminal() bool {
	return c.NextNode == ""
}

// Validate ensures checkpoint integrity
func (c *Checkpoint) Validate() error {
	if c.ID == "" {
		return ErrInvalidCheckpointID
	}
	if c.ThreadID == "" {
		return ErrInvalidThreadID
	}
	if !c.State.Status.Valid() {
		return ErrInvalidState
	}
	return nil
}
