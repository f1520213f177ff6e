// Package memory provides the in-process checkpoint saver.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/checkpoint"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/pkg/serialization"
)

// Saver implements checkpoint.Saver with thread-safe in-memory storage.
// One entry per thread id; Save overwrites the previous snapshot.
// Entries are kept until deleted or the process exits; there is no TTL
// or eviction (known limitation of the single-process design).
// PRINCIPLES:
// - KISS: Simple map with proper concurrency
// - SRP: Single responsibility for in-memory checkpoint storage
// - DIP: Implements checkpoint.Saver interface
type Saver struct {
	entries    sync.Map // thread id -> serialized checkpoint
	serializer *serialization.Serializer
}

// Config holds configuration for the in-memory saver.
type Config struct {
	Serializer *serialization.Serializer // Custom serializer (optional)
}

// NewSaver creates a new in-memory checkpoint saver.
func NewSaver(config Config) *Saver {
	if config.Serializer == nil {
		config.Serializer = serialization.DefaultSerializer()
	}
	return &Saver{serializer: config.Serializer}
}

// DefaultSaver creates a Saver with default configuration.
func DefaultSaver() *Saver {
	return NewSaver(Config{})
}

// Save stores the latest checkpoint for its thread, overwriting any
// previous snapshot.
func (s *Saver) Save(_ context.Context, cp *checkpoint.Checkpoint) error {
	if cp == nil {
		return checkpoint.ErrInvalidCheckpointID
	}
	if err := cp.Validate(); err != nil {
		return fmt.Errorf("checkpoint validation failed: %w", err)
	}

	data, err := s.serializer.Serialize(cp)
	if err != nil {
		return fmt.Errorf("checkpoint serialization failed: %w", err)
	}

	s.entries.Store(cp.ThreadID, data)
	return nil
}

// Load retrieves the latest checkpoint for a thread.
func (s *Saver) Load(_ context.Context, threadID string) (*checkpoint.Checkpoint, error) {
	if threadID == "" {
		return nil, checkpoint.ErrInvalidThreadID
	}

	value, exists := s.entries.Load(threadID)
	if !exists {
		return nil, checkpoint.ErrCheckpointNotFound
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("invalid checkpoint entry type")
	}

	var cp checkpoint.Checkpoint
	if err := s.serializer.Deserialize(data, &cp); err != nil {
		return nil, fmt.Errorf("checkpoint deserialization failed: %w", err)
	}
	return &cp, nil
}

// Exists reports whether a checkpoint is stored for a thread.
func (s *Saver) Exists(_ context.Context, threadID string) (bool, error) {
	if threadID == "" {
		return false, checkpoint.ErrInvalidThreadID
	}
	_, exists := s.entries.Load(threadID)
	return exists, nil
}

// Delete removes the checkpoint for a thread.
func (s *Saver) Delete(_ context.Context, threadID string) error {
	if threadID == "" {
		return checkpoint.ErrInvalidThreadID
	}
	if _, exists := s.entries.LoadAndDelete(threadID); !exists {
		return checkpoint.ErrCheckpointNotFound
	}
	return nil
}

// Len returns the number of stored threads (for monitoring).
func (s *Saver) Len() int {
	count := 0
	s.entries.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}
