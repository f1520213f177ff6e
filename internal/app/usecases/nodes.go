package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/catalog"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/graph"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/infrastructure/metrics"
)

// Node ids. These are also the resume cursors recorded in checkpoints,
// so renaming one invalidates stored threads.
const (
	NodeGenerateJoke            = "generate_joke"
	NodeGenerateExplanation     = "generate_explanation"
	NodeGenerateAutosuggestions = "generate_autosuggestions"
	NodeHandleAutosuggestion    = "handle_autosuggestion"
)

const jsonFormatHint = `Respond with only a JSON object, no other text.`

// Nodes implements the four workflow nodes. Every node catches
// generator failures internally and returns a deterministic degraded
// result; a node never propagates an error to the engine.
// PRINCIPLES:
// - SRP: Node logic only; routing and persistence live elsewhere
// - DIP: Depends on the TextGenerator abstraction
type Nodes struct {
	gen TextGenerator
}

// NewNodes creates the node set around a text generator.
func NewNodes(gen TextGenerator) *Nodes {
	return &Nodes{gen: gen}
}

// GenerateJoke produces the initial joke for the thread's topic.
func (n *Nodes) GenerateJoke(ctx context.Context, st state.ThreadState) graph.Result {
	metrics.IncNodeExecutions(NodeGenerateJoke)
	prompt := fmt.Sprintf(`Generate a funny joke about %s.

%s
Format: {"joke": "<the joke>"}`, st.Topic, jsonFormatHint)

	joke, err := completeAndParse(ctx, n.gen, NodeGenerateJoke, prompt, parseJoke)
	if err != nil {
		return graph.Result{Update: state.Update{
			Joke:      state.Str(fmt.Sprintf("Sorry, I couldn't generate a joke about %s right now.", st.Topic)),
			Status:    state.Tag(state.StatusError),
			LastError: state.Str(err.Error()),
		}}
	}
	return graph.Result{Update: state.Update{
		Joke:   state.Str(joke),
		Status: state.Tag(state.StatusJokeGenerated),
	}}
}

// GenerateExplanation explains why the current joke is funny.
func (n *Nodes) GenerateExplanation(ctx context.Context, st state.ThreadState) graph.Result {
	metrics.IncNodeExecutions(NodeGenerateExplanation)
	prompt := fmt.Sprintf(`Explain why this joke is funny: %s

%s
Format: {"explanation": "<the explanation>"}`, st.Joke, jsonFormatHint)

	explanation, err := completeAndParse(ctx, n.gen, NodeGenerateExplanation, prompt, parseExplanation)
	if err != nil {
		return graph.Result{Update: state.Update{
			Explanation: state.Str("Sorry, I couldn't generate an explanation for this joke."),
			Status:      state.Tag(state.StatusError),
			LastError:   state.Str(err.Error()),
		}}
	}
	return graph.Result{Update: state.Update{
		Explanation: state.Str(explanation),
		Status:      state.Tag(state.StatusExplanationGenerated),
	}}
}

// GenerateAutosuggestions asks the generator to pick the 3-4 catalog
// actions most relevant to the topic and joke. Any failure (call,
// parse, or zero valid ids) degrades to the fixed default subset; the
// thread always ends up awaiting action with usable suggestions.
func (n *Nodes) GenerateAutosuggestions(ctx context.Context, st state.ThreadState) graph.Result {
	metrics.IncNodeExecutions(NodeGenerateAutosuggestions)

	available := catalog.ListAll()
	var actionsList string
	for _, a := range available {
		actionsList += fmt.Sprintf("- %s: %s\n", a.ID, a.Description)
	}

	prompt := fmt.Sprintf(`Given this joke about "%s": "%s"

From the following actions, select the 3-4 most relevant and useful suggestions for the user:
%s
Select action IDs that would be most helpful and relevant given the context of the joke and topic.

%s
Format: {"selected_action_ids": ["<id>", ...]}`, st.Topic, st.Joke, actionsList, jsonFormatHint)

	suggestions := catalog.Defaults()
	ids, err := completeAndParse(ctx, n.gen, NodeGenerateAutosuggestions, prompt, parseSelection)
	if err == nil {
		// Filtering drops unknown and duplicate ids, so the selection can
		// shrink below the 3 distinct entries the contract requires.
		if selected := catalog.FilterByIDs(ids); len(selected) >= 3 {
			suggestions = selected
		} else {
			metrics.IncGenerationFallbacks(NodeGenerateAutosuggestions)
			log.Printf("autosuggestions: too few valid catalog ids in %v, using defaults", ids)
		}
	}

	return graph.Result{Update: state.Update{
		Autosuggestions: state.Suggestions(suggestions),
		Status:          state.Tag(state.StatusAwaitingAction),
	}}
}

// HandleAutosuggestion dispatches on the selected action. An id outside
// the catalog yields a node-level error status and leaves the joke,
// explanation, and suggestions untouched.
func (n *Nodes) HandleAutosuggestion(ctx context.Context, st state.ThreadState) graph.Result {
	metrics.IncNodeExecutions(NodeHandleAutosuggestion)
	// Label values must stay bounded; anything outside the catalog is
	// counted under one shared label.
	if catalog.Contains(st.SelectedAction) {
		metrics.IncActionsApplied(st.SelectedAction)
	} else {
		metrics.IncActionsApplied("unknown")
	}

	switch st.SelectedAction {
	case catalog.ActionAnotherJoke:
		prompt := fmt.Sprintf(`Generate a different funny joke about %s. Make it unique and different from this one: %s

%s
Format: {"joke": "<the joke>"}`, st.Topic, st.Joke, jsonFormatHint)
		return n.rejoke(ctx, prompt, state.StatusJokeRegenerated)

	case catalog.ActionMakeFunnier:
		prompt := fmt.Sprintf(`Make this joke funnier and more entertaining while keeping the same topic (%s): %s

%s
Format: {"joke": "<the joke>"}`, st.Topic, st.Joke, jsonFormatHint)
		return n.rejoke(ctx, prompt, state.StatusJokeEnhanced)

	case catalog.ActionSimilarJoke:
		prompt := fmt.Sprintf(`Generate a joke similar in style and humor to this one, but with different content: %s

%s
Format: {"joke": "<the joke>"}`, st.Joke, jsonFormatHint)
		return n.rejoke(ctx, prompt, state.StatusSimilarJokeGenerated)

	case catalog.ActionSimplerExplanation:
		prompt := fmt.Sprintf(`Rephrase this explanation in very simple, easy-to-understand words suitable for a child: %s

%s
Format: {"explanation": "<the explanation>"}`, st.Explanation, jsonFormatHint)
		explanation, err := completeAndParse(ctx, n.gen, NodeHandleAutosuggestion, prompt, parseExplanation)
		if err != nil {
			return errorResult(err)
		}
		// Fixed replacement set for the simplified explanation: the
		// actions that still make sense once it has been dumbed down.
		suggestions := catalog.FilterByIDs([]string{
			catalog.ActionAnotherJoke,
			catalog.ActionMakeFunnier,
			catalog.ActionSimilarJoke,
		})
		return graph.Result{Update: state.Update{
			Explanation:     state.Str(explanation),
			Autosuggestions: state.Suggestions(suggestions),
			Status:          state.Tag(state.StatusExplanationSimplified),
		}}

	case catalog.ActionNewTopic:
		// Signal only; the caller starts a fresh thread.
		return graph.Result{Update: state.Update{
			Status: state.Tag(state.StatusNewTopicRequested),
		}}

	default:
		log.Printf("handle_autosuggestion: unknown action %q", st.SelectedAction)
		return graph.Result{Update: state.Update{
			Status:    state.Tag(state.StatusError),
			LastError: state.Str(fmt.Sprintf("unknown action: %s", st.SelectedAction)),
		}}
	}
}

// rejoke runs a joke-replacing action: a new joke invalidates the
// explanation and suggestions, which the next explanation cycle rebuilds.
func (n *Nodes) rejoke(ctx context.Context, prompt string, ok state.Status) graph.Result {
	joke, err := completeAndParse(ctx, n.gen, NodeHandleAutosuggestion, prompt, parseJoke)
	if err != nil {
		return errorResult(err)
	}
	return graph.Result{Update: state.Update{
		Joke:            state.Str(joke),
		Explanation:     state.Str(""),
		Autosuggestions: state.Suggestions(nil),
		Status:          state.Tag(ok),
	}}
}

// completeAndParse calls the generator and parses its output, recording
// a fallback metric on any failure. Methods cannot be generic, hence the
// free function.
func completeAndParse[T any](ctx context.Context, gen TextGenerator, nodeID, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, err := gen.Complete(ctx, prompt)
	if err != nil {
		metrics.IncGenerationFallbacks(nodeID)
		log.Printf("%s: generation failed: %v", nodeID, err)
		return zero, err
	}
	out, err := parse(raw)
	if err != nil {
		metrics.IncGenerationFallbacks(nodeID)
		log.Printf("%s: could not parse generator output: %v", nodeID, err)
		return zero, err
	}
	return out, nil
}

// errorResult leaves the state untouched apart from the error tag.
func errorResult(err error) graph.Result {
	return graph.Result{Update: state.Update{
		Status:    state.Tag(state.StatusError),
		LastError: state.Str(err.Error()),
	}}
}
