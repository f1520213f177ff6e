// Package catalog provides the static, process-wide table of selectable
// follow-up actions. The table is immutable and loaded once; callers
// only ever read from it.
package catalog

import "github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"

// Action ids. These are the only values accepted by the action handler.
const (
	ActionAnotherJoke        = "another_joke"
	ActionSimplerExplanation = "simpler_explanation"
	ActionNewTopic           = "new_topic"
	ActionMakeFunnier        = "make_funnier"
	ActionSimilarJoke        = "similar_joke"
)

// actions is the catalog in canonical order. FilterByIDs preserves this
// order regardless of the order ids arrive in.
var actions = []state.Suggestion{
	{
		ID:          ActionAnotherJoke,
		Label:       "Tell me another joke about this topic",
		Description: "Generate a completely new joke about the same topic",
	},
	{
		ID:          ActionSimplerExplanation,
		Label:       "Explain this in simpler words",
		Description: "Rephrase the explanation to be easier to understand",
	},
	{
		ID:          ActionNewTopic,
		Label:       "Tell me a joke about a different topic",
		Description: "Start fresh with a new topic",
	},
	{
		ID:          ActionMakeFunnier,
		Label:       "Make it funnier",
		Description: "Enhance the joke to make it more humorous",
	},
	{
		ID:          ActionSimilarJoke,
		Label:       "Tell me a similar joke",
		Description: "Generate a joke with similar style or theme",
	},
}

// ListAll returns a copy of the full catalog in canonical order.
func ListAll() []state.Suggestion {
	out := make([]state.Suggestion, len(actions))
	copy(out, actions)
	return out
}

// FilterByIDs returns the catalog entries whose id appears in ids,
// in catalog order. Unknown ids are ignored.
func FilterByIDs(ids []string) []state.Suggestion {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []state.Suggestion
	for _, a := range actions {
		if wanted[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// Contains reports whether id names a catalog entry.
func Contains(id string) bool {
	for _, a := range actions {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Defaults returns the deterministic fallback subset used when the
// generator's selection cannot be parsed: another_joke,
// simpler_explanation, make_funnier.
func Defaults() []state.Suggestion {
	return FilterByIDs([]string{ActionAnotherJoke, ActionSimplerExplanation, ActionMakeFunnier})
}
