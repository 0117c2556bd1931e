package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_CountsRecords(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "t.fa")
	require.NoError(t, os.WriteFile(fn, []byte(">a\nMKXV\n>b\n>c\nAB\nC\n"), 0o644))
	rep, err := Inspect(context.Background(), "targets", fn, "X")
	require.NoError(t, err)
	assert.Equal(t, InputReport{Role: "targets", Source: fn, Records: 2, Skipped: 1, Residues: 7, Wildcards: 1}, rep)
	assert.Contains(t, rep.String(), "2 records, 1 empty skipped, 7 residues, 1 with ambiguous residues")
}

func TestRun_UsageErrorsExit2(t *testing.T) {
	for _, argv := range [][]string{
		{"match", "-q", "a.fa"},
		{"match", "--bogus"},
		{"frobnicate"},
		{"match", "-q", "a", "-t", "b", "--wildcard", "--wildcards", ""},
	} {
		var out, errBuf bytes.Buffer
		code := Run(argv, &out, &errBuf)
		assert.Equal(t, 2, code, "argv %v", argv)
		assert.True(t, strings.HasPrefix(errBuf.String(), "error: "), errBuf.String())
	}
}

func TestRun_InfoAndHelp(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, 0, Run([]string{"info"}, &out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "aho")
	assert.Contains(t, out.String(), "json, jsonl, text")

	out.Reset()
	require.Equal(t, 0, Run([]string{"-h"}, &out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "match")
}

func TestValidate_MissingFileExit3(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"validate", "-q", filepath.Join(t.TempDir(), "nope.fa")}, &out, &errBuf)
	assert.Equal(t, 3, code)
	assert.Contains(t, errBuf.String(), "validate")
}
