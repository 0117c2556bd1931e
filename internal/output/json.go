// internal/output/json.go
package output

import (
	"io"

	"microtpct/internal/engine"
	"microtpct/internal/jsonutil"
	"microtpct/pkg/api"
)

// ToAPIMatch converts a domain Result to the stable wire schema (v1). The
// sentinel carries null target and position.
func ToAPIMatch(r engine.Result) api.MatchV1 {
	v := api.MatchV1{QueryHeader: r.QueryID}
	if r.Matched {
		target, pos := r.TargetID, r.Position
		v.TargetHeader = &target
		v.Position = &pos
	}
	return v
}

// ToAPIMatches flattens the rows of qr.
func ToAPIMatches(qr engine.QueryResult) []api.MatchV1 {
	rows := qr.Rows()
	out := make([]api.MatchV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIMatch(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 matches (pretty-indented).
func WriteJSON(w io.Writer, list []engine.QueryResult) error {
	out := make([]api.MatchV1, 0, len(list))
	for _, qr := range list {
		out = append(out, ToAPIMatches(qr)...)
	}
	return jsonutil.EncodePretty(w, out)
}
