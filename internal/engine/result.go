// internal/engine/result.go
package engine

import "microtpct/internal/fasta"

// Result is one output row: a query found in a target at Position, or the
// no-match sentinel (Matched=false, empty TargetID, no position).
type Result struct {
	QueryID  string
	TargetID string
	Position int // zero-based start of the leftmost occurrence
	Matched  bool
}

// Sentinel is the single row reported for a query that matched nothing.
func Sentinel(queryID string) Result {
	return Result{QueryID: queryID, Position: -1}
}

// QueryResult collects every hit of one query, in target order.
type QueryResult struct {
	Index int // ordinal of the query in its input stream
	Query fasta.Record
	Hits  []Result
}

// Matched reports whether at least one target contains the query.
func (qr QueryResult) Matched() bool { return len(qr.Hits) > 0 }

// Rows returns the hits, or exactly one sentinel when there are none.
func (qr QueryResult) Rows() []Result {
	if len(qr.Hits) == 0 {
		return []Result{Sentinel(qr.Query.ID)}
	}
	return qr.Hits
}
