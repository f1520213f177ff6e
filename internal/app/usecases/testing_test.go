package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// fakeGenerator scripts the text generation capability for tests. By
// default it answers every prompt with well-formed JSON matching the
// format hint in the prompt; individual behaviors can be overridden.
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string

	// respond overrides the default canned answer when set.
	respond func(prompt string) (string, error)
}

func (g *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.respond != nil {
		return g.respond(prompt)
	}
	return cannedResponse(prompt), nil
}

func (g *fakeGenerator) promptCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// cannedResponse picks a response by the format hint the node embedded
// in its prompt.
func cannedResponse(prompt string) string {
	switch {
	case strings.Contains(prompt, `"selected_action_ids"`):
		return `{"selected_action_ids": ["another_joke", "make_funnier", "similar_joke"]}`
	case strings.Contains(prompt, `"explanation"`):
		return `{"explanation": "It subverts expectations."}`
	default:
		return `{"joke": "Why did the cat sit on the keyboard? To keep an eye on the mouse."}`
	}
}

var errGeneratorDown = errors.New("generator unavailable")

// failingGenerator always fails.
type failingGenerator struct{}

func (failingGenerator) Complete(context.Context, string) (string, error) {
	return "", errGeneratorDown
}
