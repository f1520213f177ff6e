package usecases

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Structured output contracts the generator is instructed to follow.
// The generator is asked for a bare JSON object; parsing tolerates code
// fences and surrounding prose, since models decorate output freely.

type jokeOutput struct {
	Joke string `json:"joke"`
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
}

type suggestionSelection struct {
	SelectedActionIDs []string `json:"selected_action_ids"`
}

var errNoJSONObject = errors.New("no JSON object found in generator output")

// parseJSONOutput extracts the first JSON object from raw generator text
// and unmarshals it into v. Markdown fences and prose around the object
// are ignored.
func parseJSONOutput(raw string, v interface{}) error {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return errNoJSONObject
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v)
}

// parseJoke returns the joke text or an error when the output cannot be
// parsed or the field is empty.
func parseJoke(raw string) (string, error) {
	var out jokeOutput
	if err := parseJSONOutput(raw, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Joke) == "" {
		return "", errors.New("generator output has no joke")
	}
	return out.Joke, nil
}

// parseExplanation returns the explanation text or an error.
func parseExplanation(raw string) (string, error) {
	var out explanationOutput
	if err := parseJSONOutput(raw, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Explanation) == "" {
		return "", errors.New("generator output has no explanation")
	}
	return out.Explanation, nil
}

// parseSelection returns the selected action ids or an error. The
// selection contract is 3-4 ids; anything outside that range counts as
// a parse failure so callers fall back deterministically.
func parseSelection(raw string) ([]string, error) {
	var out suggestionSelection
	if err := parseJSONOutput(raw, &out); err != nil {
		return nil, err
	}
	if n := len(out.SelectedActionIDs); n < 3 || n > 4 {
		return nil, fmt.Errorf("generator selected %d actions, want 3-4", n)
	}
	return out.SelectedActionIDs, nil
}
