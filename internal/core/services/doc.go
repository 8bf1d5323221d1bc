// Package services implements the core ingestion pipeline stages.
//
// Two stages live here:
//
//   - Chunker: greedy token-budgeted paragraph packer with overlap and
//     content-hash deduplication
//   - SessionGrouper: inactivity-gap segmentation of chat messages,
//     reply attachment and transcript rendering
//
// Both stages are lazy: they consume and produce iter.Seq2 sequences,
// so memory stays bounded by one buffer at a time and a consumer that
// stops pulling halts the pipeline. Neither stage performs IO; sources
// and sinks are adapters.
package services
