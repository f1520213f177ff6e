// Package graph provides edge definitions
package graph

import "github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"

// EdgeType represents the type of edge
type EdgeType string

const (
	// EdgeTypeDefault represents an unconditional edge
	EdgeTypeDefault EdgeType = "default"
	// EdgeTypeConditional represents an edge traversed only for
	// specific status tags
	EdgeTypeConditional EdgeType = "conditional"
)

// Edge represents a connection between nodes. A conditional edge is
// traversed when the status produced by the source node is in When;
// a default edge is always traversed. Routing is a pure function of
// the source node and the status tag; edges carry no hidden state.
// PRINCIPLES:
// - KISS: Simple edge representation
// - SRP: Only responsible for edge data
type Edge struct {
	Source string
	Target string
	Type   EdgeType
	When   []state.Status
}

// Validate ensures edge integrity
func (e *Edge) Validate() error {
	if e.Source == "" {
		return ErrInvalidSource
	}
	if e.Target == "" {
		return ErrInvalidTarget
	}
	if e.Type == "" {
		e.Type = EdgeTypeDefault
	}
	if e.Type == EdgeTypeConditional && len(e.When) == 0 {
		return ErrMissingCondition
	}
	return nil
}

// Matches reports whether this edge should be traversed for the given
// status tag.
func (e *Edge) Matches(st state.Status) bool {
	if e.Type != EdgeTypeConditional {
		return true
	}
	for _, s := range e.When {
		if s == st {
			return true
		}
	}
	return false
}
