// Package connectors provides readers for concrete ingestion sources.
// A connector owns the IO for its source (files, database) and hands
// the core a lazy sequence of domain values; it never chunks or
// deduplicates itself.
package connectors
