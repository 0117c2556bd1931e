package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtpct/internal/engine"
	"microtpct/internal/fasta"
	"microtpct/pkg/api"
)

func sample() []engine.QueryResult {
	return []engine.QueryResult{
		{Index: 0, Query: fasta.Record{ID: "q1"}, Hits: []engine.Result{
			{QueryID: "q1", TargetID: "t1", Position: 4, Matched: true},
			{QueryID: "q1", TargetID: "t2", Position: 0, Matched: true},
		}},
		{Index: 1, Query: fasta.Record{ID: "q2"}},
	}
}

func run(t *testing.T, format string, o Options) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartMatchWriter(&buf, format, o, 2)
	for _, qr := range sample() {
		in <- qr
	}
	close(in)
	require.NoError(t, <-done)
	return buf.String()
}

func TestStartMatchWriter_Text(t *testing.T) {
	assert.Equal(t, "query_header;target_header;position\nq1;t1;4\nq1;t2;0\nq2;;\n",
		run(t, "text", Options{Delimiter: ';', Header: true}))
	assert.Equal(t, "q1\tt1\t4\nq1\tt2\t0\nq2\t\t\n",
		run(t, "text", Options{Delimiter: '\t'}))
}

func TestStartMatchWriter_JSON(t *testing.T) {
	var got []api.MatchV1
	require.NoError(t, json.Unmarshal([]byte(run(t, "json", Options{})), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "q2", got[2].QueryHeader)
	assert.Nil(t, got[2].TargetHeader)
}

func TestStartMatchWriter_JSONLStreamsValidV1(t *testing.T) {
	out := run(t, "jsonl", Options{})
	sc := bufio.NewScanner(bytes.NewReader([]byte(out)))
	var n int
	for sc.Scan() {
		n++
		var v api.MatchV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	assert.Equal(t, 3, n)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("other")))
	assert.False(t, IsBrokenPipe(nil))

	in, done := StartMatchWriter(brokenWriter{}, "text", Options{Delimiter: ';', Header: true}, 1)
	for _, qr := range sample() {
		in <- qr
	}
	close(in)
	assert.True(t, IsBrokenPipe(<-done))
}
