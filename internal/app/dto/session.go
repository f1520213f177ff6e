// Package dto defines the request/response types of the session API and
// the sentinel errors the engine surfaces to it.
package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// validate is the shared validator instance; field names in validation
// errors follow the JSON tags so API clients see the wire names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// StartRequest begins (or restarts) a thread.
type StartRequest struct {
	Topic    string `json:"topic" validate:"required"`
	ThreadID string `json:"thread_id" validate:"required"`
}

// Validate checks required fields.
func (r *StartRequest) Validate() error { return validate.Struct(r) }

// ContinueRequest resumes a halted thread.
type ContinueRequest struct {
	ThreadID string `json:"thread_id" validate:"required"`
}

func (r *ContinueRequest) Validate() error { return validate.Struct(r) }

// ActionRequest submits the autosuggestion the user selected.
type ActionRequest struct {
	ThreadID string `json:"thread_id" validate:"required"`
	Action   string `json:"action" validate:"required"`
}

func (r *ActionRequest) Validate() error { return validate.Struct(r) }

// StatusRequest reads a thread's status without advancing it.
type StatusRequest struct {
	ThreadID string `json:"thread_id" validate:"required"`
}

func (r *StatusRequest) Validate() error { return validate.Struct(r) }

// SessionResponse is the common 200-level payload shape: the thread's
// visible state plus a human-oriented message.
type SessionResponse struct {
	Success         bool               `json:"success"`
	ThreadID        string             `json:"thread_id"`
	Topic           string             `json:"topic"`
	Joke            string             `json:"joke,omitempty"`
	Explanation     string             `json:"explanation,omitempty"`
	Autosuggestions []state.Suggestion `json:"autosuggestions"`
	Status          string             `json:"status"`
	ActionPerformed string             `json:"action_performed,omitempty"`
	Message         string             `json:"message,omitempty"`
	Error           string             `json:"error,omitempty"`
}

// ThreadStatus is the snapshot returned by the engine's status read.
type ThreadStatus struct {
	Exists             bool               `json:"exists"`
	ThreadID           string             `json:"thread_id"`
	Status             string             `json:"status"`
	Topic              string             `json:"topic"`
	HasJoke            bool               `json:"has_joke"`
	HasExplanation     bool               `json:"has_explanation"`
	HasAutosuggestions bool               `json:"has_autosuggestions"`
	Autosuggestions    []state.Suggestion `json:"autosuggestions,omitempty"`
	NextNode           string             `json:"next_node,omitempty"`
}

// FromState builds the common response payload from a thread state.
func FromState(threadID string, st state.ThreadState) SessionResponse {
	return SessionResponse{
		Success:         true,
		ThreadID:        threadID,
		Topic:           st.Topic,
		Joke:            st.Joke,
		Explanation:     st.Explanation,
		Autosuggestions: st.Autosuggestions,
		Status:          string(st.Status),
		Error:           st.LastError,
	}
}
