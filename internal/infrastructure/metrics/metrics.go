// Package metrics publishes workflow counters via expvar. The server
// renders them in Prometheus text exposition format without pulling in a
// metrics client dependency.
package metrics

import "expvar"

// Per-label counters using expvar maps.
var (
	nodeExecutions      = expvar.NewMap("jokeflow_node_executions_total")
	generationFallbacks = expvar.NewMap("jokeflow_generation_fallbacks_total")
	actionsApplied      = expvar.NewMap("jokeflow_actions_applied_total")
)

// Scalar counters.
var (
	threadsStarted = new(expvar.Int)
	resumesTotal   = new(expvar.Int)
)

func init() {
	expvar.Publish("jokeflow_threads_started_total", threadsStarted)
	expvar.Publish("jokeflow_resumes_total", resumesTotal)
}

// IncNodeExecutions counts one execution of the given node.
func IncNodeExecutions(nodeID string) { nodeExecutions.Add(nodeID, 1) }

// IncGenerationFallbacks counts one generator call or parse failure that
// was absorbed by node-level fallback logic.
func IncGenerationFallbacks(nodeID string) { generationFallbacks.Add(nodeID, 1) }

// IncActionsApplied counts one applied (or rejected) user action.
func IncActionsApplied(action string) { actionsApplied.Add(action, 1) }

// IncThreadsStarted counts one thread start (including restarts).
func IncThreadsStarted() { threadsStarted.Add(1) }

// IncResumes counts one resume call that advanced a thread.
func IncResumes() { resumesTotal.Add(1) }
