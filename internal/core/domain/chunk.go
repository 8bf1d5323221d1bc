package domain

import (
	"crypto/sha1"
	"encoding/hex"
)

// IngestItem is a (metadata, text) pair handed to the chunking engine
// by any source adapter. Immutable once produced.
type IngestItem struct {
	Metadata Metadata
	Text     string
}

// Chunk is a bounded unit of text plus metadata, the unit of embedding
// and storage. ID is derived deterministically and exclusively from
// Metadata and Text, so re-ingesting identical content yields an
// identical chunk.
type Chunk struct {
	ID       string
	Metadata Metadata
	Text     string
}

// NewChunk builds a content-addressed chunk. The identifier is the
// SHA-1 digest of the canonical metadata rendering joined to the text
// by a fixed delimiter. Equal (metadata, text) pairs produce equal IDs
// in the same or a different process.
func NewChunk(metadata Metadata, text string) Chunk {
	sum := sha1.Sum([]byte(metadata.Canonical() + "_" + text))
	return Chunk{
		ID:       hex.EncodeToString(sum[:]),
		Metadata: metadata,
		Text:     text,
	}
}
