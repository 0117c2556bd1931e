// Package pipeline streams query FASTA records in batches through a Matcher
// against a prepared TargetSet and calls a visit callback per query, in
// query input order.
//
// The only contract to implement is Matcher (MatchBatch).
// This keeps the pipeline swappable and testable.
package pipeline
