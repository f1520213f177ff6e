// Package graph provides the core workflow graph entities
// following Clean Architecture principles with zero external dependencies.
package graph

import "github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"

// Terminal is the sentinel returned by NextAfter when no edge leaves the
// completed node for the resulting status: the thread is done until a
// new start.
const Terminal = ""

// Graph represents the workflow structure: nodes, edges, the entry
// point, and the set of interrupt points (nodes after which execution
// always halts awaiting external input).
// PRINCIPLES:
// - KISS: Simple struct, no complex hierarchies
// - SRP: Only responsible for structure and routing, not execution
type Graph struct {
	Name       string
	Nodes      map[string]*Node
	Edges      []*Edge
	EntryPoint string
	Interrupts []string
}

// Validate ensures graph integrity
func (g *Graph) Validate() error {
	if g.Name == "" {
		return ErrInvalidGraphName
	}
	if g.EntryPoint == "" {
		return ErrNoEntryPoint
	}
	if _, exists := g.Nodes[g.EntryPoint]; !exists {
		return ErrInvalidEntryPoint
	}
	for _, e := range g.Edges {
		if _, exists := g.Nodes[e.Source]; !exists {
			return ErrSourceNodeNotFound
		}
		if _, exists := g.Nodes[e.Target]; !exists {
			return ErrTargetNodeNotFound
		}
	}
	for _, id := range g.Interrupts {
		if _, exists := g.Nodes[id]; !exists {
			return ErrInterruptNodeNotFound
		}
	}
	return nil
}

// AddNode adds a node to the graph
func (g *Graph) AddNode(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if err := node.Validate(); err != nil {
		return err
	}
	if g.Nodes == nil {
		g.Nodes = make(map[string]*Node)
	}
	// Prevent duplicate node IDs
	if _, exists := g.Nodes[node.ID]; exists {
		return ErrDuplicateNode
	}
	g.Nodes[node.ID] = node
	return nil
}

// AddEdge adds an edge to the graph
func (g *Graph) AddEdge(edge *Edge) error {
	if edge == nil {
		return ErrNilEdge
	}
	if err := edge.Validate(); err != nil {
		return err
	}
	if _, exists := g.Nodes[edge.Source]; !exists {
		return ErrSourceNodeNotFound
	}
	if _, exists := g.Nodes[edge.Target]; !exists {
		return ErrTargetNodeNotFound
	}
	g.Edges = append(g.Edges, edge)
	return nil
}

// NextAfter resolves the next node to run once nodeID has completed with
// the given status tag. It returns Terminal when no edge applies.
// Unrecognized status tags at a conditional fan-out are rejected rather
// than silently falling into a default branch.
func (g *Graph) NextAfter(nodeID string, st state.Status) (string, error) {
	if _, exists := g.Nodes[nodeID]; !exists {
		return Terminal, ErrNodeNotFound
	}
	if !st.Valid() {
		return Terminal, ErrUnknownStatus
	}
	for _, e := range g.Edges {
		if e.Source != nodeID {
			continue
		}
		if e.Matches(st) {
			return e.Target, nil
		}
	}
	return Terminal, nil
}

// IsInterrupt reports whether execution must halt after nodeID.
func (g *Graph) IsInterrupt(nodeID string) bool {
	for _, id := range g.Interrupts {
		if id == nodeID {
			return true
		}
	}
	return false
}
