// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"microtpct/internal/engine"
	"microtpct/internal/fasta"
	"microtpct/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	list := []engine.QueryResult{
		{Query: fasta.Record{ID: "q1"}, Hits: []engine.Result{hitRow("q1", "t", 3)}},
		{Query: fasta.Record{ID: "q2"}},
	}
	if err := WriteJSON(buf, list); err != nil {
		t.Fatalf("json write: %v", err)
	}
	var got []api.MatchV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json round-trip failed: %v %v", err, got)
	}
	if got[0].TargetHeader == nil || *got[0].TargetHeader != "t" || got[0].Position == nil || *got[0].Position != 3 {
		t.Fatalf("bad hit: %+v", got[0])
	}
	if got[1].QueryHeader != "q2" || got[1].TargetHeader != nil || got[1].Position != nil {
		t.Fatalf("bad sentinel: %+v", got[1])
	}
}

func TestToAPIMatch_SentinelIsNull(t *testing.T) {
	b, err := json.Marshal(ToAPIMatch(engine.Sentinel("q")))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"query_header":"q","target_header":null,"position":null}` {
		t.Fatalf("sentinel wire form changed: %s", b)
	}
}
