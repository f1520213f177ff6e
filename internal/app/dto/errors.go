package dto

import "errors"

// Engine-level errors surfaced to the API layer. Not-found and
// precondition failures map to 404; everything else unexpected is a 500.
var (
	ErrThreadNotFound  = errors.New("no active workflow found for thread")
	ErrNoJokeYet       = errors.New("no joke found for thread, start workflow first")
	ErrMissingThreadID = errors.New("thread ID is required")
	ErrMissingTopic    = errors.New("topic is required")
	ErrMissingAction   = errors.New("action is required")
)
