package driven

// TokenCounter measures text in the token units of a specific model.
// Implementations are pure functions of their input: equal text always
// yields equal counts within one counter instance.
type TokenCounter interface {
	// Count returns the number of tokens in text. Never negative.
	Count(text string) int

	// Truncate shortens text to at most maxTokens tokens. When the
	// input already fits it is returned unchanged; otherwise the
	// truncated text carries a trailing ellipsis marker.
	Truncate(text string, maxTokens int) string
}
