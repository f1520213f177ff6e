package usecases

import "context"

// TextGenerator is the external text generation capability. The engine
// treats it as opaque: a structured prompt goes in, raw text comes out,
// or the call fails. Failures never cross a node boundary; node logic
// degrades to deterministic fallback values instead.
// PRINCIPLES:
// - ISP: One method, the only thing nodes need
// - DIP: Node logic depends on this abstraction, not on a vendor SDK
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
