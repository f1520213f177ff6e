package checkpoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

func TestCheckpoint_Validate(t *testing.T) {
	valid := &Checkpoint{
		ID:        "cp-1",
		ThreadID:  "thread-1",
		State:     state.New("cats"),
		NextNode:  "generate_explanation",
		Step:      1,
		Timestamp: time.Now(),
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing id", func(t *testing.T) {
		cp := *valid
		cp.ID = ""
		assert.ErrorIs(t, cp.Validate(), ErrInvalidCheckpointID)
	})

	t.Run("missing thread id", func(t *testing.T) {
		cp := *valid
		cp.ThreadID = ""
		assert.ErrorIs(t, cp.Validate(), ErrInvalidThreadID)
	})

	t.Run("invalid status", func(t *testing.T) {
		cp := *valid
		cp.State.Status = state.Status("bogus")
		assert.ErrorIs(t, cp.Validate(), ErrInvalidState)
	})
}

func TestCheckpoint_Terminal(t *testing.T) {
	cp := &Checkpoint{NextNode: "handle_autosuggestion"}
	assert.False(t, cp.Terminal())

	cp.NextNode = ""
	assert.True(t, cp.Terminal())
}
