// Package state provides the typed thread state owned by a single
// conversational thread, following Clean Architecture principles with
// zero external dependencies.
package state

// Status is the closed set of workflow status tags. The tag is both data
// (reported to the caller) and the discriminant the router branches on,
// so every switch over it must be exhaustive.
type Status string

const (
	// StatusStarted marks a freshly initialized thread.
	StatusStarted Status = "started"
	// StatusJokeGenerated is set after the initial joke node.
	StatusJokeGenerated Status = "joke_generated"
	// StatusExplanationGenerated is set after the explanation node.
	StatusExplanationGenerated Status = "explanation_generated"
	// StatusAwaitingAction is set once suggestions are ready and the
	// thread is halted for external input.
	StatusAwaitingAction Status = "awaiting_action"
	// StatusJokeRegenerated is set after the another_joke action.
	StatusJokeRegenerated Status = "joke_regenerated"
	// StatusJokeEnhanced is set after the make_funnier action.
	StatusJokeEnhanced Status = "joke_enhanced"
	// StatusSimilarJokeGenerated is set after the similar_joke action.
	StatusSimilarJokeGenerated Status = "similar_joke_generated"
	// StatusExplanationSimplified is set after the simpler_explanation action.
	StatusExplanationSimplified Status = "explanation_simplified"
	// StatusNewTopicRequested signals the caller should start over.
	StatusNewTopicRequested Status = "new_topic_requested"
	// StatusError marks a degraded result; LastError carries the detail.
	StatusError Status = "error"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusStarted, StatusJokeGenerated, StatusExplanationGenerated,
		StatusAwaitingAction, StatusJokeRegenerated, StatusJokeEnhanced,
		StatusSimilarJokeGenerated, StatusExplanationSimplified,
		StatusNewTopicRequested, StatusError:
		return true
	}
	return false
}

// Suggestion is one selectable follow-up action presented to the user.
type Suggestion struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// ThreadState is the mutable record owned exclusively by one thread id
// for its entire lifetime. Empty string / nil slice means "absent".
// PRINCIPLES:
// - KISS: Plain struct, no behavior beyond merge/copy
// - SRP: Only responsible for state data, not routing or persistence
type ThreadState struct {
	Topic           string       `json:"topic"`
	Joke            string       `json:"joke,omitempty"`
	Explanation     string       `json:"explanation,omitempty"`
	Autosuggestions []Suggestion `json:"autosuggestions,omitempty"`
	SelectedAction  string       `json:"selected_action,omitempty"`
	Status          Status       `json:"status"`
	LastError       string       `json:"last_error,omitempty"`
}

// New returns the initial state for a thread: all optional fields absent.
func New(topic string) ThreadState {
	return ThreadState{Topic: topic, Status: StatusStarted}
}

// Clone returns a deep copy. Nodes receive copies so they can never
// mutate the thread's state except through their returned Update.
func (t ThreadState) Clone() ThreadState {
	out := t
	if t.Autosuggestions != nil {
		out.Autosuggestions = make([]Suggestion, len(t.Autosuggestions))
		copy(out.Autosuggestions, t.Autosuggestions)
	}
	return out
}

// Update is a partial state produced by one node execution. Merging is
// overwrite-present-keys: a nil pointer leaves the field untouched, a
// pointer to the zero value clears it. This replaces the implicit
// dict-union merging of loosely typed workflow states with a defined
// operation.
type Update struct {
	Topic           *string
	Joke            *string
	Explanation     *string
	Autosuggestions *[]Suggestion
	SelectedAction  *string
	Status          *Status
	LastError       *string
}

// Apply merges u into t and returns the merged state. t is not mutated.
func (t ThreadState) Apply(u Update) ThreadState {
	out := t.Clone()
	if u.Topic != nil {
		out.Topic = *u.Topic
	}
	if u.Joke != nil {
		out.Joke = *u.Joke
	}
	if u.Explanation != nil {
		out.Explanation = *u.Explanation
	}
	if u.Autosuggestions != nil {
		out.Autosuggestions = *u.Autosuggestions
	}
	if u.SelectedAction != nil {
		out.SelectedAction = *u.SelectedAction
	}
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.LastError != nil {
		out.LastError = *u.LastError
	}
	return out
}

// Helpers for building Update literals without intermediate variables.

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Tag returns a pointer to st.
func Tag(st Status) *Status { return &st }

// Suggestions returns a pointer to sl. Pass nil to clear existing
// suggestions back to absent.
func Suggestions(sl []Suggestion) *[]Suggestion { return &sl }
