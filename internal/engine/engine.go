// internal/engine/engine.go
package engine

import (
	"errors"
	"fmt"

	"microtpct/internal/fasta"
	"microtpct/internal/match"
	"microtpct/internal/sanitize"
)

// Strategy selects how a batch of queries is matched.
type Strategy string

const (
	// StrategyScan tests each query against each target on its own.
	StrategyScan Strategy = "scan"
	// StrategyAho builds one Aho–Corasick automaton per batch of queries and
	// scans every target once.
	StrategyAho Strategy = "aho"
)

// ErrTargetsNotPrepared is returned when a TargetSet was built for a
// different Preparation than the engine runs with.
var ErrTargetsNotPrepared = errors.New("target set not prepared for this engine")

type Config struct {
	Preparation
	Strategy Strategy
}

type Engine struct {
	cfg    Config
	tester match.ContainmentTester
}

func New(c Config) *Engine {
	if c.Strategy == "" {
		c.Strategy = StrategyScan
	}
	var t match.ContainmentTester = match.Literal{}
	if c.Mode == ModeWildcard {
		t = match.Wildcard{}
	}
	return &Engine{cfg: c, tester: t}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Preparation is what NewTargetSet must be given for this engine.
func (e *Engine) Preparation() Preparation { return e.cfg.Preparation }

func (e *Engine) check(ts *TargetSet) error {
	if ts == nil {
		return fmt.Errorf("%w: nil target set", ErrTargetsNotPrepared)
	}
	if ts.prep != e.cfg.Preparation {
		return fmt.Errorf("%w: set is %+v, engine wants %+v", ErrTargetsNotPrepared, ts.prep, e.cfg.Preparation)
	}
	return nil
}

// query sanitizes the identifier and returns the bytes to search for. Query
// residues are never wildcarded.
func (e *Engine) query(q fasta.Record) (fasta.Record, []byte) {
	q.ID = sanitize.Header(q.ID, e.cfg.Delimiter)
	res := q.Residues
	if e.cfg.ILEquivalent {
		res = sanitize.LeucineIsoleucine(res)
	}
	return q, []byte(res)
}

// find runs the configured tester only on a target's wildcard form. Targets
// without one are compared literally, byte for byte, in every mode.
func (e *Engine) find(pat []byte, t *Target) int {
	if t.wild != nil {
		return e.tester.FindFirst(pat, t.wild)
	}
	return match.Literal{}.FindFirst(pat, t.seq)
}

func hit(queryID string, t *Target, pos int) Result {
	return Result{QueryID: queryID, TargetID: t.ID, Position: pos, Matched: true}
}

// MatchQuery tests q against every target, in target order, reporting the
// leftmost occurrence in each target that contains it.
func (e *Engine) MatchQuery(q fasta.Record, ts *TargetSet) (QueryResult, error) {
	if err := e.check(ts); err != nil {
		return QueryResult{}, err
	}
	q, pat := e.query(q)
	qr := QueryResult{Query: q}
	for i := range ts.targets {
		t := &ts.targets[i]
		if pos := e.find(pat, t); pos >= 0 {
			qr.Hits = append(qr.Hits, hit(q.ID, t, pos))
		}
	}
	return qr, nil
}

// MatchBatch matches qs with the configured strategy. Results are indexed
// like qs; Index is left for the caller to assign. Both strategies return the
// same results.
func (e *Engine) MatchBatch(qs []fasta.Record, ts *TargetSet) ([]QueryResult, error) {
	if err := e.check(ts); err != nil {
		return nil, err
	}
	if e.cfg.Strategy != StrategyAho {
		out := make([]QueryResult, len(qs))
		for i, q := range qs {
			qr, err := e.MatchQuery(q, ts)
			if err != nil {
				return nil, err
			}
			out[i] = qr
		}
		return out, nil
	}

	out := make([]QueryResult, len(qs))
	pats := make([][]byte, len(qs))
	for i, q := range qs {
		out[i].Query, pats[i] = e.query(q)
	}
	ac := match.NewAutomaton(pats)
	var first []int
	for i := range ts.targets {
		t := &ts.targets[i]
		// The automaton is strict; wildcard-bearing targets are re-checked
		// one query at a time.
		if t.wild != nil {
			for qi, p := range pats {
				if pos := (match.Wildcard{}).FindFirst(p, t.wild); pos >= 0 {
					out[qi].Hits = append(out[qi].Hits, hit(out[qi].Query.ID, t, pos))
				}
			}
			continue
		}
		first = ac.FirstOccurrencesInto(t.seq, first)
		for qi, pos := range first {
			if pos >= 0 {
				out[qi].Hits = append(out[qi].Hits, hit(out[qi].Query.ID, t, pos))
			}
		}
	}
	return out, nil
}
