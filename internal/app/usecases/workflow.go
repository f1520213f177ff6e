package usecases

import (
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/graph"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// BuildJokeWorkflow assembles the joke graph:
//
//	generate_joke -> generate_explanation -> generate_autosuggestions
//	    -> handle_autosuggestion -> generate_explanation (joke replaced)
//	                             -> terminal (otherwise)
//
// Interrupt-after points: generate_joke, generate_autosuggestions and
// handle_autosuggestion. The engine halts after each of these and waits
// for the caller to continue or submit an action.
func BuildJokeWorkflow(nodes *Nodes) (*graph.Graph, error) {
	g := &graph.Graph{
		Name:       "joke-autosuggestion",
		EntryPoint: NodeGenerateJoke,
		Interrupts: []string{
			NodeGenerateJoke,
			NodeGenerateAutosuggestions,
			NodeHandleAutosuggestion,
		},
	}

	for _, n := range []*graph.Node{
		{ID: NodeGenerateJoke, Name: "Generate Joke", Run: nodes.GenerateJoke},
		{ID: NodeGenerateExplanation, Name: "Generate Explanation", Run: nodes.GenerateExplanation},
		{ID: NodeGenerateAutosuggestions, Name: "Generate Autosuggestions", Run: nodes.GenerateAutosuggestions},
		{ID: NodeHandleAutosuggestion, Name: "Handle Autosuggestion", Run: nodes.HandleAutosuggestion},
	} {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}

	edges := []*graph.Edge{
		{Source: NodeGenerateJoke, Target: NodeGenerateExplanation, Type: graph.EdgeTypeDefault},
		{Source: NodeGenerateExplanation, Target: NodeGenerateAutosuggestions, Type: graph.EdgeTypeDefault},
		{Source: NodeGenerateAutosuggestions, Target: NodeHandleAutosuggestion, Type: graph.EdgeTypeDefault},
		// A replaced joke loops back into the explanation cycle. All
		// other outcomes of handle_autosuggestion are terminal.
		{
			Source: NodeHandleAutosuggestion,
			Target: NodeGenerateExplanation,
			Type:   graph.EdgeTypeConditional,
			When: []state.Status{
				state.StatusJokeRegenerated,
				state.StatusJokeEnhanced,
				state.StatusSimilarJokeGenerated,
			},
		},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
