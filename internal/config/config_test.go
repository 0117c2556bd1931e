package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microtpct/internal/engine"
)

func load(t *testing.T, file string, args ...string) Config {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyQueries, "", "")
	fs.String(KeyTargets, "", "")
	fs.Bool(KeyWildcard, false, "")
	fs.Int(KeyThreads, 0, "")
	fs.String(KeyDelimiter, ";", "")
	require.NoError(t, fs.Parse(args))

	v := viper.New()
	require.NoError(t, v.BindPFlags(fs))
	c, err := Load(v, file)
	require.NoError(t, err)
	return c
}

func valid() Config {
	return Config{
		Queries: "q.fa", Targets: "t.fa",
		Wildcards: "X", Delimiter: ";", Format: "text", Strategy: "scan",
		BatchSize: 1, LogLevel: "info",
	}
}

func TestLoad_Defaults(t *testing.T) {
	c := load(t, "")
	assert.Equal(t, "X", c.Wildcards)
	assert.Equal(t, ";", c.Delimiter)
	assert.Equal(t, DefaultFormat, c.Format)
	assert.Equal(t, DefaultStrategy, c.Strategy)
	assert.Equal(t, DefaultBatchSize, c.BatchSize)
	assert.NoError(t, c.Validate())
	assert.Equal(t, engine.ModeStrict, c.Mode())
}

func TestLoad_Layering(t *testing.T) {
	file := filepath.Join(t.TempDir(), "microtpct.yaml")
	require.NoError(t, os.WriteFile(file, []byte("threads: 3\nwildcard: true\nformat: jsonl\ndelimiter: \",\"\n"), 0o644))

	c := load(t, file)
	assert.Equal(t, 3, c.Threads)
	assert.True(t, c.Wildcard)
	assert.Equal(t, "jsonl", c.Format)

	t.Setenv("MICROTPCT_THREADS", "5")
	t.Setenv("MICROTPCT_BATCH_SIZE", "9")
	c = load(t, file)
	assert.Equal(t, 5, c.Threads, "env beats file")
	assert.Equal(t, 9, c.BatchSize)

	c = load(t, file, "--threads", "7", "--delimiter", "tab")
	assert.Equal(t, 7, c.Threads, "flag beats env")
	assert.Equal(t, byte('\t'), c.Delim())
}

func TestLoad_MissingFileIsConfigError(t *testing.T) {
	v := viper.New()
	_, err := Load(v, filepath.Join(t.TempDir(), "nope.yaml"))
	var ce *Error
	assert.True(t, errors.As(err, &ce), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*Config)
		key   string
	}{
		{"wildcard mode without symbols", func(c *Config) { c.Wildcard, c.Wildcards = true, "" }, KeyWildcards},
		{"whitespace symbol", func(c *Config) { c.Wildcards = "X " }, KeyWildcards},
		{"il overlap", func(c *Config) { c.ILEquivalent, c.Wildcards = true, "XL" }, KeyWildcards},
		{"pipe delimiter", func(c *Config) { c.Delimiter = "|" }, KeyDelimiter},
		{"unknown format", func(c *Config) { c.Format = "fasta" }, KeyFormat},
		{"unknown strategy", func(c *Config) { c.Strategy = "regex" }, KeyStrategy},
		{"negative threads", func(c *Config) { c.Threads = -1 }, KeyThreads},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, KeyBatchSize},
		{"exit code range", func(c *Config) { c.NoMatchExitCode = 130 }, KeyNoMatchExitCode},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, KeyLogLevel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.patch(&c)
			err := c.Validate()
			var ce *Error
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tc.key, ce.Key)
		})
	}
	assert.NoError(t, valid().Validate())
}

func TestRequireInputs(t *testing.T) {
	c := valid()
	assert.NoError(t, c.RequireInputs(true))

	c.Targets = ""
	assert.Error(t, c.RequireInputs(true))
	assert.NoError(t, c.RequireInputs(false))

	c.Queries = ""
	assert.Error(t, c.RequireInputs(false))

	c.Queries, c.Targets = "-", "-"
	assert.ErrorIs(t, c.RequireInputs(true), ErrStdinTwice)
}

func TestEngineConfig(t *testing.T) {
	c := valid()
	c.Wildcard = true
	c.Strategy = "AHO"
	c.Delimiter = ","
	c.ILEquivalent = true
	assert.Equal(t, engine.Config{
		Preparation: engine.Preparation{Mode: engine.ModeWildcard, Wildcards: "X", Delimiter: ',', ILEquivalent: true},
		Strategy:    engine.StrategyAho,
	}, c.Engine())
}
