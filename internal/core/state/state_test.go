package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{
		StatusStarted, StatusJokeGenerated, StatusExplanationGenerated,
		StatusAwaitingAction, StatusJokeRegenerated, StatusJokeEnhanced,
		StatusSimilarJokeGenerated, StatusExplanationSimplified,
		StatusNewTopicRequested, StatusError,
	} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, Status("completed").Valid())
	assert.False(t, Status("").Valid())
}

func TestNew(t *testing.T) {
	st := New("cats")
	assert.Equal(t, "cats", st.Topic)
	assert.Equal(t, StatusStarted, st.Status)
	assert.Empty(t, st.Joke)
	assert.Empty(t, st.Explanation)
	assert.Nil(t, st.Autosuggestions)
	assert.Empty(t, st.SelectedAction)
}

func TestThreadState_Apply(t *testing.T) {
	base := ThreadState{
		Topic:       "cats",
		Joke:        "a joke",
		Explanation: "an explanation",
		Autosuggestions: []Suggestion{
			{ID: "another_joke", Label: "Another"},
		},
		Status: StatusAwaitingAction,
	}

	t.Run("nil pointers leave fields untouched", func(t *testing.T) {
		merged := base.Apply(Update{Status: Tag(StatusError)})
		assert.Equal(t, base.Joke, merged.Joke)
		assert.Equal(t, base.Explanation, merged.Explanation)
		assert.Equal(t, base.Autosuggestions, merged.Autosuggestions)
		assert.Equal(t, StatusError, merged.Status)
	})

	t.Run("present pointers overwrite", func(t *testing.T) {
		merged := base.Apply(Update{
			Joke:   Str("a better joke"),
			Status: Tag(StatusJokeRegenerated),
		})
		assert.Equal(t, "a better joke", merged.Joke)
		assert.Equal(t, StatusJokeRegenerated, merged.Status)
		assert.Equal(t, base.Explanation, merged.Explanation)
	})

	t.Run("zero-value pointers clear", func(t *testing.T) {
		merged := base.Apply(Update{
			Explanation:     Str(""),
			Autosuggestions: Suggestions(nil),
		})
		assert.Empty(t, merged.Explanation)
		assert.Nil(t, merged.Autosuggestions)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = base.Apply(Update{
			Joke:            Str("mutated?"),
			Autosuggestions: Suggestions(nil),
		})
		assert.Equal(t, "a joke", base.Joke)
		require.Len(t, base.Autosuggestions, 1)
	})
}

func TestThreadState_Clone(t *testing.T) {
	st := ThreadState{
		Topic:           "dogs",
		Autosuggestions: []Suggestion{{ID: "make_funnier", Label: "Funnier"}},
	}

	clone := st.Clone()
	clone.Autosuggestions[0].ID = "changed"

	assert.Equal(t, "make_funnier", st.Autosuggestions[0].ID)
}
