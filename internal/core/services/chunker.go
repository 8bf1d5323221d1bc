package services

import (
	"iter"
	"strings"
	"unicode"

	"github.com/remem-labs/remem/internal/core/domain"
	"github.com/remem-labs/remem/internal/core/ports/driven"
)

// DefaultMaxTokens is the default token budget per chunk.
const DefaultMaxTokens = 500

// DefaultOverlap is the default number of trailing paragraphs carried
// from one chunk into the next.
const DefaultOverlap = 1

// Chunker packs paragraphs into token-budgeted chunks and deduplicates
// them by content hash. One Chunker is one ingestion context: the set
// of emitted IDs lives on the instance and spans every Chunk call made
// through it, so feeding the same input twice emits nothing the second
// time. Discard the Chunker to end the run; independent runs use
// independent instances.
type Chunker struct {
	counter   driven.TokenCounter
	maxTokens int
	overlap   int
	seen      map[string]struct{}
}

// ChunkerOption configures a Chunker.
type ChunkerOption func(*Chunker)

// WithMaxTokens sets the token budget per chunk.
func WithMaxTokens(n int) ChunkerOption {
	return func(c *Chunker) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithOverlap sets how many trailing paragraphs carry over into the
// next chunk. Zero disables overlap.
func WithOverlap(n int) ChunkerOption {
	return func(c *Chunker) {
		if n >= 0 {
			c.overlap = n
		}
	}
}

// NewChunker creates a chunker with a fresh dedup context.
func NewChunker(counter driven.TokenCounter, opts ...ChunkerOption) *Chunker {
	c := &Chunker{
		counter:   counter,
		maxTokens: DefaultMaxTokens,
		overlap:   DefaultOverlap,
		seen:      make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Emitted reports how many distinct chunk IDs this context has emitted.
func (c *Chunker) Emitted() int {
	return len(c.seen)
}

// Chunk lazily packs each item's paragraphs into chunks. A source
// error stops the sequence after being yielded. Chunks whose ID was
// already emitted through this Chunker are skipped.
func (c *Chunker) Chunk(items iter.Seq2[domain.IngestItem, error]) iter.Seq2[domain.Chunk, error] {
	return func(yield func(domain.Chunk, error) bool) {
		for item, err := range items {
			if err != nil {
				yield(domain.Chunk{}, err)
				return
			}
			if err := item.Metadata.Validate(); err != nil {
				yield(domain.Chunk{}, err)
				return
			}
			if !c.chunkItem(item, yield) {
				return
			}
		}
	}
}

func (c *Chunker) chunkItem(item domain.IngestItem, yield func(domain.Chunk, error) bool) bool {
	buffer := []string{}
	total := 0

	for _, para := range splitParagraphs(item.Text) {
		cost := c.counter.Count(para)

		if total+cost > c.maxTokens && len(buffer) > 0 {
			if !c.emit(item.Metadata, buffer, yield) {
				return false
			}

			// Keep the last N paragraphs for context continuity.
			if c.overlap > 0 {
				if c.overlap < len(buffer) {
					buffer = append([]string(nil), buffer[len(buffer)-c.overlap:]...)
				}
			} else {
				buffer = buffer[:0]
			}
			total = 0
			for _, kept := range buffer {
				total += c.counter.Count(kept)
			}
		}

		// A single paragraph over the budget is never split further;
		// the chunk may exceed the budget by that one paragraph.
		buffer = append(buffer, para)
		total += cost
	}

	if len(buffer) > 0 {
		return c.emit(item.Metadata, buffer, yield)
	}
	return true
}

// emit records the chunk ID as seen and yields the chunk unless that
// ID was emitted before. Duplicate IDs are still recorded, so a
// partially consumed run leaves the dedup set valid.
func (c *Chunker) emit(metadata domain.Metadata, buffer []string, yield func(domain.Chunk, error) bool) bool {
	chunk := domain.NewChunk(metadata, strings.Join(buffer, "\n"))
	if _, dup := c.seen[chunk.ID]; dup {
		return true
	}
	c.seen[chunk.ID] = struct{}{}
	return yield(chunk, nil)
}

// splitParagraphs breaks text on line boundaries, drops blank lines
// and right-trims the rest.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return paragraphs
}
