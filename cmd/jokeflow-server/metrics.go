package main

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// promMetricsHandler renders expvar-published metrics in Prometheus text
// exposition format. Known jokeflow metrics get HELP/TYPE metadata;
// other numeric expvars fall back to a minimal untyped rendering.
func promMetricsHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	type meta struct {
		typ, help string
		isMap     bool
		label     string
	}
	metas := map[string]meta{
		"jokeflow_node_executions_total":      {typ: "counter", help: "Workflow node executions", isMap: true, label: "node"},
		"jokeflow_generation_fallbacks_total": {typ: "counter", help: "Generator failures absorbed by node fallbacks", isMap: true, label: "node"},
		"jokeflow_actions_applied_total":      {typ: "counter", help: "User actions applied", isMap: true, label: "action"},
		"jokeflow_threads_started_total":      {typ: "counter", help: "Threads started, including restarts"},
		"jokeflow_resumes_total":              {typ: "counter", help: "Resume calls that advanced a thread"},
	}

	// Collect variable names deterministically
	varNames := make([]string, 0, 16)
	expvar.Do(func(kv expvar.KeyValue) {
		varNames = append(varNames, kv.Key)
	})
	sort.Strings(varNames)

	for _, name := range varNames {
		v := expvar.Get(name)
		m, known := metas[name]
		if !known {
			if iv, ok := v.(*expvar.Int); ok {
				_, _ = fmt.Fprintf(w, "# TYPE %s gauge\n", name)
				_, _ = fmt.Fprintf(w, "%s %s\n", name, iv.String())
			}
			continue
		}
		_, _ = fmt.Fprintf(w, "# HELP %s %s\n", name, m.help)
		_, _ = fmt.Fprintf(w, "# TYPE %s %s\n", name, m.typ)
		if m.isMap {
			if mp, ok := v.(*expvar.Map); ok {
				sub := make([]expvar.KeyValue, 0, 8)
				mp.Do(func(kv expvar.KeyValue) { sub = append(sub, kv) })
				sort.Slice(sub, func(i, j int) bool { return sub[i].Key < sub[j].Key })
				for _, kv := range sub {
					_, _ = fmt.Fprintf(w, "%s{%s=\"%s\"} %s\n", name, m.label, escapeLabel(kv.Key), kv.Value.String())
				}
			}
		} else {
			_, _ = fmt.Fprintf(w, "%s %s\n", name, v.String())
		}
	}
}

// escapeLabel escapes backslash, double-quote, and newline per the
// Prometheus text format.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
