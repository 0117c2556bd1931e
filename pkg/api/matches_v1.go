// pkg/api/matches_v1.go
package api

// MatchV1 is the stable JSON/JSONL schema for one result row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// A query that matched no target is reported once with TargetHeader and
// Position null.
type MatchV1 struct {
	QueryHeader  string  `json:"query_header"`
	TargetHeader *string `json:"target_header"`
	Position     *int    `json:"position"` // zero-based
}
