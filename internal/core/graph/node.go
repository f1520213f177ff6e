// Package graph provides node definitions
package graph

import (
	"context"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// Result is what a node hands back to the engine: a partial state update
// carrying the status tag the router branches on. Nodes absorb text
// generation failures internally, so executing a node cannot fail; a
// degraded run returns a fallback value (and possibly
// state.StatusError) instead of an error.
type Result struct {
	Update state.Update
}

// Func is a named unit of workflow logic. It receives a copy of the
// current thread state and must not communicate back except through the
// returned Result.
type Func func(ctx context.Context, st state.ThreadState) Result

// Node represents a vertex in the workflow graph
// PRINCIPLES:
// - KISS: Simple node representation
// - SRP: Only responsible for node data
type Node struct {
	ID   string
	Name string
	Run  Func
}

// Validate ensures node integrity
func (n *Node) Validate() error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if n.Name == "" {
		return ErrInvalidNodeName
	}
	if n.Run == nil {
		return ErrNilNodeFunc
	}
	return nil
}
