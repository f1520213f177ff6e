package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/app/dto"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// sessionEngine is the slice of the workflow engine the HTTP layer
// needs; tests substitute a stub.
type sessionEngine interface {
	Start(ctx context.Context, threadID, topic string) (state.ThreadState, error)
	Resume(ctx context.Context, threadID string) (state.ThreadState, error)
	ApplyAction(ctx context.Context, threadID, action string) (state.ThreadState, error)
	GetStatus(ctx context.Context, threadID string) (*dto.ThreadStatus, error)
}

type server struct {
	engine sessionEngine
}

func newServer(engine sessionEngine) *server {
	return &server{engine: engine}
}

func (s *server) register(mux *http.ServeMux) {
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /metrics", promMetricsHandler)
	mux.HandleFunc("POST /start", s.handleStart)
	mux.HandleFunc("POST /continue", s.handleContinue)
	mux.HandleFunc("POST /action", s.handleAction)
	mux.HandleFunc("POST /status", s.handleStatus)
}

func (s *server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Stateful joke generation API with autosuggestions is running!",
		"endpoints": []string{
			"/health",
			"/start - Start joke generation",
			"/continue - Generate explanation and autosuggestions",
			"/action - Handle user's selected autosuggestion",
			"/status - Check thread status",
		},
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"persistence": "in-memory",
		"features":    []string{"interrupts", "autosuggestions"},
	})
}

func (s *server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req dto.StartRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	st, err := s.engine.Start(r.Context(), req.ThreadID, req.Topic)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dto.FromState(req.ThreadID, st)
	resp.Message = "Joke generated. Call /continue to get explanation."
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleContinue(w http.ResponseWriter, r *http.Request) {
	var req dto.ContinueRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	st, err := s.engine.Resume(r.Context(), req.ThreadID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dto.FromState(req.ThreadID, st)
	resp.Message = "Explanation and autosuggestions generated. Use /action to select an autosuggestion."
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ActionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	st, err := s.engine.ApplyAction(r.Context(), req.ThreadID, req.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dto.FromState(req.ThreadID, st)
	resp.ActionPerformed = req.Action
	resp.Message = actionMessage(st.Status)
	// An unknown action reports status=error inside a 200 payload, not
	// an HTTP error. Inconsistent with the 404s elsewhere, but this is
	// the documented contract of the action endpoint.
	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	status, err := s.engine.GetStatus(r.Context(), req.ThreadID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func actionMessage(st state.Status) string {
	switch st {
	case state.StatusJokeRegenerated, state.StatusJokeEnhanced, state.StatusSimilarJokeGenerated:
		return "New joke generated! Call /continue to get explanation and new suggestions."
	case state.StatusExplanationSimplified:
		return "Explanation simplified with new autosuggestions! Select another action or call /start for a new topic."
	case state.StatusNewTopicRequested:
		return "Session completed. Call /start with a new topic."
	default:
		return "Action completed."
	}
}

// decodeRequest decodes and validates the JSON body, replying 400 on any
// failure. Returns false if a response has already been written.
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"detail":  "invalid JSON body",
		})
		return false
	}
	if err := req.Validate(); err != nil {
		detail := "invalid request"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			detail = "missing or invalid field: " + verrs[0].Field()
		}
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"detail":  detail,
		})
		return false
	}
	return true
}

// writeError maps engine errors onto the HTTP taxonomy: not-found and
// precondition failures are 404, anything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, dto.ErrThreadNotFound) || errors.Is(err, dto.ErrNoJokeYet) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"detail":  err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
