// internal/engine/targets.go
package engine

import (
	"microtpct/internal/fasta"
	"microtpct/internal/sanitize"
)

// Mode selects the containment semantics.
type Mode string

const (
	ModeStrict   Mode = "strict"
	ModeWildcard Mode = "wildcard"
)

// Preparation says how records are normalized before matching. A TargetSet
// is only valid for an Engine configured with the same Preparation.
type Preparation struct {
	Mode         Mode
	Wildcards    string // ambiguous-residue symbols (targets only)
	Delimiter    byte   // output field delimiter, scrubbed from identifiers
	ILEquivalent bool   // collapse I and L to J on both sides
}

// Target is one prepared target record.
type Target struct {
	ID string // sanitized identifier

	seq  []byte // residues as matched literally
	wild []byte // wildcard form; nil unless wildcard mode and a symbol occurs
}

// HasWildcard reports whether the target was rewritten for wildcard matching.
func (t *Target) HasWildcard() bool { return t.wild != nil }

// TargetSet holds every target in parse order. It is read-only once built and
// safe to share across goroutines.
type TargetSet struct {
	prep     Preparation
	targets  []Target
	residues int
	ambig    int
}

// NewTargetSet sanitizes recs for prep. In wildcard mode the wildcard form of
// each target is computed here, once, and cached for the run.
func NewTargetSet(recs []fasta.Record, prep Preparation) *TargetSet {
	ts := &TargetSet{prep: prep, targets: make([]Target, len(recs))}
	for i, r := range recs {
		res := r.Residues
		if prep.ILEquivalent {
			res = sanitize.LeucineIsoleucine(res)
		}
		t := Target{
			ID:  sanitize.Header(r.ID, prep.Delimiter),
			seq: []byte(res),
		}
		if prep.Mode == ModeWildcard {
			if form, ok := sanitize.WildcardForm(res, prep.Wildcards); ok {
				t.wild = form
				ts.ambig++
			}
		} else if sanitize.ContainsAny(res, prep.Wildcards) {
			ts.ambig++
		}
		ts.residues += len(res)
		ts.targets[i] = t
	}
	return ts
}

// Len is the number of targets.
func (ts *TargetSet) Len() int { return len(ts.targets) }

// At returns the i-th target in parse order.
func (ts *TargetSet) At(i int) *Target { return &ts.targets[i] }

// Preparation returns the normalization the set was built with.
func (ts *TargetSet) Preparation() Preparation { return ts.prep }

// Residues is the total residue count over all targets.
func (ts *TargetSet) Residues() int { return ts.residues }

// WildcardTargets counts targets carrying at least one ambiguous symbol, in
// either mode.
func (ts *TargetSet) WildcardTargets() int { return ts.ambig }
