// Package domain defines the core entities of the remem ingestion pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: A bounded, content-addressed unit of text plus metadata
//   - IngestItem: A (metadata, text) pair handed to the chunking engine
//   - ChatMessage: One normalised conversational event
//   - ChatSession: A contiguous run of messages bounded by inactivity gaps
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
