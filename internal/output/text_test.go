package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtpct/internal/engine"
	"microtpct/internal/fasta"
)

func hitRow(q, t string, pos int) engine.Result {
	return engine.Result{QueryID: q, TargetID: t, Position: pos, Matched: true}
}

func writeText(w io.Writer, list []engine.QueryResult, delim byte, header bool) error {
	ch := make(chan engine.QueryResult, len(list))
	for _, qr := range list {
		ch <- qr
	}
	close(ch)
	return StreamText(w, ch, delim, header)
}

func TestStreamText_RowsAndSentinel(t *testing.T) {
	list := []engine.QueryResult{
		{Query: fasta.Record{ID: "q1"}, Hits: []engine.Result{hitRow("q1", "t1", 1), hitRow("q1", "t2", 0)}},
		{Query: fasta.Record{ID: "q2"}},
	}
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, list, ';', true))
	assert.Equal(t, "query_header;target_header;position\nq1;t1;1\nq1;t2;0\nq2;;\n", buf.String())

	buf.Reset()
	require.NoError(t, writeText(&buf, list, ',', false))
	assert.Equal(t, "q1,t1,1\nq1,t2,0\nq2,,\n", buf.String())
}

func TestStreamText_EmptyTargetSet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, []engine.QueryResult{{Query: fasta.Record{ID: "q"}}}, ';', true))
	assert.Equal(t, "query_header;target_header;position\nq;;\n", buf.String())
}

func TestStreamText_EveryRowHasThreeFields(t *testing.T) {
	eng := engine.New(engine.Config{Preparation: engine.Preparation{Mode: engine.ModeStrict, Delimiter: ';'}})
	ts := engine.NewTargetSet([]fasta.Record{{ID: "sp;P1;a;b", Residues: "MKV"}}, eng.Preparation())
	qr, err := eng.MatchQuery(fasta.Record{ID: "pep;x", Residues: "MK"}, ts)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, []engine.QueryResult{qr}, ';', true))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Len(t, strings.Split(line, ";"), 3, "line %q", line)
	}
}

func TestParseDelimiter(t *testing.T) {
	for in, want := range map[string]byte{";": ';', "comma": ',', ",": ',', "tab": '\t', "\t": '\t', `\t`: '\t'} {
		got, err := ParseDelimiter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDelimiter("|")
	assert.Error(t, err)
	assert.Equal(t, "tab", DelimiterName('\t'))
	assert.Equal(t, ";", DelimiterName(';'))
}
