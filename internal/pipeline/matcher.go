// internal/pipeline/matcher.go
package pipeline

import (
	"microtpct/internal/engine"
	"microtpct/internal/fasta"
)

// Matcher is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Matcher interface {
	MatchBatch(qs []fasta.Record, ts *engine.TargetSet) ([]engine.QueryResult, error)
}
