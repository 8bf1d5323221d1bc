// Package normalisers turns source-native event records into the
// canonical domain types of the ingestion pipeline. Each subpackage
// knows the wire shape of one source format.
package normalisers
