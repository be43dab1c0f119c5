// Package provider holds the language and embedding backends. Both follow
// the same shape: a one-method interface, a small closed set of variants,
// and a process-wide registry that picks one from configuration.
package provider

import "context"

// LLM sends a system instruction and a user message to a text-completion
// service and returns the raw response text.
//
// Implementations pin temperature to zero so identical queries produce
// identical filters, as far as the underlying model allows. Failures carry
// domain.ErrParserUnavailable whether the backend is unreachable or
// reported an error itself.
type LLM interface {
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
