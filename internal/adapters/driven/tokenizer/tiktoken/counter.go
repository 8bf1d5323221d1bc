// Package tiktoken counts tokens with the BPE vocabularies used by
// OpenAI models. It is the default TokenCounter implementation; the
// model name selects the encoding.
package tiktoken

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/remem-labs/remem/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.TokenCounter = (*Counter)(nil)

// DefaultModel selects the encoding when no model is configured.
const DefaultModel = "gpt-4o"

// ellipsis marks truncated text.
const ellipsis = "…"

// Counter measures text with one model's encoding. Safe for repeated
// use; the encoding is resolved once.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// New resolves the encoding for a model name. Fails when the model is
// unknown or the vocabulary cannot be loaded (first use may fetch it).
func New(model string) (*Counter, error) {
	if model == "" {
		model = DefaultModel
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load encoding for %s: %w", model, err)
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// Truncate shortens text to at most maxTokens tokens, appending the
// ellipsis marker only when truncation occurred.
func (c *Counter) Truncate(text string, maxTokens int) string {
	tokens := c.enc.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}
	if maxTokens < 0 {
		maxTokens = 0
	}
	return c.enc.Decode(tokens[:maxTokens]) + ellipsis
}
