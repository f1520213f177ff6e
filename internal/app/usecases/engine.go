package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/app/dto"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/checkpoint"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/graph"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/infrastructure/metrics"
)

// defaultMaxSteps bounds a single engine call. The joke graph needs at
// most three nodes per call; the bound only guards against a
// misconstructed graph cycling forever.
const defaultMaxSteps = 25

// Engine orchestrates step-by-step workflow execution: it runs nodes,
// merges their partial updates, persists a checkpoint after every node,
// and halts at interrupt points. One engine instance is constructed at
// process start with its dependencies injected; there is no package
// level singleton.
// PRINCIPLES:
// - SRP: Orchestration only; node logic, routing data, and persistence
//   are injected
// - DIP: Depends on checkpoint.Saver and the graph abstraction
type Engine struct {
	graph    *graph.Graph
	saver    checkpoint.Saver
	maxSteps int

	// locks serializes resume/action calls per thread id so two
	// overlapping loads of one checkpoint cannot overwrite each other
	// (lost-update hazard). Distinct threads run fully in parallel.
	locks sync.Map // thread id -> *sync.Mutex
}

// NewEngine builds the joke workflow around the given generator and
// checkpoint saver.
func NewEngine(gen TextGenerator, saver checkpoint.Saver) (*Engine, error) {
	g, err := BuildJokeWorkflow(NewNodes(gen))
	if err != nil {
		return nil, fmt.Errorf("failed to build workflow: %w", err)
	}
	return &Engine{graph: g, saver: saver, maxSteps: defaultMaxSteps}, nil
}

// Start initializes a thread and runs it up to the first interrupt
// (after generate_joke). Reusing a thread id restarts that thread; the
// previous checkpoint is overwritten. This restart-by-reuse is
// intentional, not a conflict.
func (e *Engine) Start(ctx context.Context, threadID, topic string) (state.ThreadState, error) {
	if threadID == "" {
		return state.ThreadState{}, dto.ErrMissingThreadID
	}
	if topic == "" {
		return state.ThreadState{}, dto.ErrMissingTopic
	}

	unlock := e.lockThread(threadID)
	defer unlock()

	metrics.IncThreadsStarted()
	return e.run(ctx, threadID, state.New(topic), e.graph.EntryPoint, 0)
}

// Resume continues a halted thread from its recorded next node to the
// next interrupt point. A terminal thread is returned unchanged.
func (e *Engine) Resume(ctx context.Context, threadID string) (state.ThreadState, error) {
	if threadID == "" {
		return state.ThreadState{}, dto.ErrMissingThreadID
	}

	unlock := e.lockThread(threadID)
	defer unlock()

	cp, err := e.loadCheckpoint(ctx, threadID)
	if err != nil {
		return state.ThreadState{}, err
	}
	if cp.State.Joke == "" {
		return state.ThreadState{}, fmt.Errorf("%w: thread %s", dto.ErrNoJokeYet, threadID)
	}
	if cp.Terminal() {
		return cp.State, nil
	}

	metrics.IncResumes()
	return e.run(ctx, threadID, cp.State, cp.NextNode, cp.Step)
}

// ApplyAction merges the selected action into the thread's state and
// runs handle_autosuggestion, which is itself an interrupt point: the
// call returns right after it, with the checkpoint's next node recording
// whether the explanation cycle continues on the next Resume.
func (e *Engine) ApplyAction(ctx context.Context, threadID, action string) (state.ThreadState, error) {
	if threadID == "" {
		return state.ThreadState{}, dto.ErrMissingThreadID
	}
	if action == "" {
		return state.ThreadState{}, dto.ErrMissingAction
	}

	unlock := e.lockThread(threadID)
	defer unlock()

	cp, err := e.loadCheckpoint(ctx, threadID)
	if err != nil {
		return state.ThreadState{}, err
	}

	st := cp.State.Apply(state.Update{SelectedAction: state.Str(action)})
	return e.run(ctx, threadID, st, NodeHandleAutosuggestion, cp.Step)
}

// GetStatus is a pure read of the thread's latest checkpoint. It never
// mutates stored state and consumes no generation call.
func (e *Engine) GetStatus(ctx context.Context, threadID string) (*dto.ThreadStatus, error) {
	if threadID == "" {
		return nil, dto.ErrMissingThreadID
	}

	cp, err := e.loadCheckpoint(ctx, threadID)
	if err != nil {
		return nil, err
	}

	st := cp.State
	return &dto.ThreadStatus{
		Exists:             true,
		ThreadID:           threadID,
		Status:             string(st.Status),
		Topic:              st.Topic,
		HasJoke:            st.Joke != "",
		HasExplanation:     st.Explanation != "",
		HasAutosuggestions: len(st.Autosuggestions) > 0,
		Autosuggestions:    st.Autosuggestions,
		NextNode:           cp.NextNode,
	}, nil
}

// run executes nodes from nodeID forward, checkpointing after each, and
// returns once an interrupt node has run or the thread goes terminal.
func (e *Engine) run(ctx context.Context, threadID string, st state.ThreadState, nodeID string, step int) (state.ThreadState, error) {
	for i := 0; nodeID != graph.Terminal; i++ {
		if i >= e.maxSteps {
			return st, fmt.Errorf("workflow exceeded %d steps at node %s", e.maxSteps, nodeID)
		}
		node, exists := e.graph.Nodes[nodeID]
		if !exists {
			return st, fmt.Errorf("%w: %s", graph.ErrNodeNotFound, nodeID)
		}

		res := node.Run(ctx, st.Clone())
		st = st.Apply(res.Update)

		next, err := e.graph.NextAfter(nodeID, st.Status)
		if err != nil {
			return st, fmt.Errorf("routing after node %s: %w", nodeID, err)
		}

		step++
		if err := e.persist(ctx, threadID, st, next, step); err != nil {
			return st, err
		}

		if e.graph.IsInterrupt(nodeID) {
			return st, nil
		}
		nodeID = next
	}
	return st, nil
}

// persist overwrites the thread's latest checkpoint. A saver failure is
// fatal to the calling operation and propagates unmodified.
func (e *Engine) persist(ctx context.Context, threadID string, st state.ThreadState, nextNode string, step int) error {
	cp := &checkpoint.Checkpoint{
		ID:        uuid.New().String(),
		ThreadID:  threadID,
		State:     st,
		NextNode:  nextNode,
		Step:      step,
		Timestamp: time.Now(),
	}
	if err := e.saver.Save(ctx, cp); err != nil {
		return fmt.Errorf("failed to persist checkpoint for thread %s: %w", threadID, err)
	}
	return nil
}

// loadCheckpoint maps a missing checkpoint onto the public not-found
// error; saver I/O failures propagate as-is.
func (e *Engine) loadCheckpoint(ctx context.Context, threadID string) (*checkpoint.Checkpoint, error) {
	cp, err := e.saver.Load(ctx, threadID)
	if err != nil {
		if errors.Is(err, checkpoint.ErrCheckpointNotFound) {
			return nil, fmt.Errorf("%w: %s", dto.ErrThreadNotFound, threadID)
		}
		return nil, fmt.Errorf("failed to load checkpoint for thread %s: %w", threadID, err)
	}
	return cp, nil
}

// lockThread acquires the per-thread mutex, creating it on first use.
func (e *Engine) lockThread(threadID string) func() {
	v, _ := e.locks.LoadOrStore(threadID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
