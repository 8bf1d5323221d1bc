// Package heuristic estimates token counts at ~4 characters per token.
// It needs no vocabulary files, which makes it the offline fallback
// when the BPE encoding cannot be loaded, and a convenient counter for
// tests. Not billing-accurate.
package heuristic

import (
	"strings"
	"unicode/utf8"

	"github.com/remem-labs/remem/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.TokenCounter = Counter{}

// charsPerToken is the average for English text under GPT-style BPE.
const charsPerToken = 4

// ellipsis marks truncated text.
const ellipsis = "…"

// Counter is a stateless estimator.
type Counter struct{}

// New creates a heuristic counter.
func New() Counter {
	return Counter{}
}

// Count estimates the token count, rounding up.
func (Counter) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// Truncate cuts text down to roughly maxTokens tokens on a rune
// boundary, appending the ellipsis marker only when truncation
// occurred.
func (c Counter) Truncate(text string, maxTokens int) string {
	if c.Count(text) <= maxTokens {
		return text
	}

	budget := maxTokens * charsPerToken
	if budget < 0 {
		budget = 0
	}
	for budget > 0 && !utf8.RuneStart(text[budget]) {
		budget--
	}
	return strings.TrimRight(text[:budget], " ") + ellipsis
}
