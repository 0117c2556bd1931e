// Package config holds the run settings. They are unmarshalled from Viper,
// which layers command-line flags over MICROTPCT_* environment variables over
// an optional YAML file over defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"microtpct/internal/engine"
	"microtpct/internal/logger"
	"microtpct/internal/output"
	"microtpct/internal/sanitize"
)

// EnvPrefix prefixes every environment override, e.g. MICROTPCT_THREADS.
const EnvPrefix = "MICROTPCT"

// Setting keys; flags use the same names.
const (
	KeyQueries         = "queries"
	KeyTargets         = "targets"
	KeyWildcard        = "wildcard"
	KeyWildcards       = "wildcards"
	KeyILEquivalent    = "il-equivalent"
	KeyDelimiter       = "delimiter"
	KeyFormat          = "format"
	KeyOut             = "out"
	KeyNoHeader        = "no-header"
	KeyStrategy        = "strategy"
	KeyBatchSize       = "batch-size"
	KeyThreads         = "threads"
	KeyStats           = "stats"
	KeyNoMatchExitCode = "no-match-exit-code"
	KeyLogLevel        = "log-level"
	KeyQuiet           = "quiet"
)

// Defaults.
const (
	DefaultFormat    = output.FormatText
	DefaultStrategy  = string(engine.StrategyScan)
	DefaultBatchSize = 256
	DefaultLogLevel  = "info"
)

// Config is the root-level settings struct.
type Config struct {
	// FASTA inputs; "-" reads stdin
	Queries string `mapstructure:"queries"`
	Targets string `mapstructure:"targets"`

	// matching
	Wildcard     bool   `mapstructure:"wildcard"`
	Wildcards    string `mapstructure:"wildcards"`
	ILEquivalent bool   `mapstructure:"il-equivalent"`
	Strategy     string `mapstructure:"strategy"`

	// output
	Delimiter string `mapstructure:"delimiter"`
	Format    string `mapstructure:"format"`
	Out       string `mapstructure:"out"`
	NoHeader  bool   `mapstructure:"no-header"`
	Stats     string `mapstructure:"stats"`

	// performance
	BatchSize int `mapstructure:"batch-size"`
	Threads   int `mapstructure:"threads"`

	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
	LogLevel        string `mapstructure:"log-level"`
	Quiet           bool   `mapstructure:"quiet"`
}

// Error is a rejected setting. It is reported before any input is read.
type Error struct {
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return "config: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid --%s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func invalid(key, format string, args ...any) error {
	return &Error{Key: key, Err: fmt.Errorf(format, args...)}
}

// SetDefaults registers the default of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWildcards, sanitize.DefaultWildcards)
	v.SetDefault(KeyDelimiter, string(output.DefaultDelimiter))
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyStrategy, DefaultStrategy)
	v.SetDefault(KeyBatchSize, DefaultBatchSize)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// Load reads file (if any) into v, enables environment overrides and
// unmarshals the result. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, &Error{Err: fmt.Errorf("read %s: %w", file, err)}
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, &Error{Err: fmt.Errorf("decode settings: %w", err)}
	}
	return c, nil
}

// Validate rejects settings no run can use.
func (c Config) Validate() error {
	if c.Wildcard && c.Wildcards == "" {
		return invalid(KeyWildcards, "wildcard mode needs at least one ambiguous-residue symbol")
	}
	if strings.ContainsAny(c.Wildcards, " \t\r\n>") {
		return invalid(KeyWildcards, "%q holds whitespace or '>'", c.Wildcards)
	}
	if c.ILEquivalent && strings.ContainsAny(c.Wildcards, "ILJ") {
		return invalid(KeyWildcards, "%q overlaps the I/L/J residues collapsed by --%s", c.Wildcards, KeyILEquivalent)
	}
	if _, err := output.ParseDelimiter(c.Delimiter); err != nil {
		return &Error{Key: KeyDelimiter, Err: err}
	}
	if !contains(output.Formats, c.Format) {
		return invalid(KeyFormat, "%q (want one of %s)", c.Format, strings.Join(output.Formats, ", "))
	}
	if _, err := c.strategy(); err != nil {
		return err
	}
	if c.Threads < 0 {
		return invalid(KeyThreads, "must be >= 0")
	}
	if c.BatchSize < 1 {
		return invalid(KeyBatchSize, "must be >= 1")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 125 {
		return invalid(KeyNoMatchExitCode, "must be within 0..125")
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return invalid(KeyLogLevel, "unknown level %q", c.LogLevel)
	}
	return nil
}

// ErrStdinTwice is returned when both inputs name stdin.
var ErrStdinTwice = errors.New("queries and targets cannot both be read from stdin")

// RequireInputs checks the input paths a command needs. With both set, a
// matching run needs queries and targets; otherwise one of them suffices.
func (c Config) RequireInputs(both bool) error {
	switch {
	case both && c.Queries == "":
		return invalid(KeyQueries, "a query FASTA is required")
	case both && c.Targets == "":
		return invalid(KeyTargets, "a target FASTA is required")
	case !both && c.Queries == "" && c.Targets == "":
		return &Error{Err: fmt.Errorf("provide --%s and/or --%s", KeyQueries, KeyTargets)}
	case c.Queries == "-" && c.Targets == "-":
		return &Error{Err: ErrStdinTwice}
	}
	return nil
}

// Mode is the matching mode selected by --wildcard.
func (c Config) Mode() engine.Mode {
	if c.Wildcard {
		return engine.ModeWildcard
	}
	return engine.ModeStrict
}

// Delim is the parsed delimiter. Call after Validate.
func (c Config) Delim() byte {
	d, err := output.ParseDelimiter(c.Delimiter)
	if err != nil {
		return output.DefaultDelimiter
	}
	return d
}

func (c Config) strategy() (engine.Strategy, error) {
	switch s := engine.Strategy(strings.ToLower(c.Strategy)); s {
	case engine.StrategyScan, engine.StrategyAho:
		return s, nil
	}
	return "", invalid(KeyStrategy, "%q (want scan or aho)", c.Strategy)
}

// Engine is the engine configuration for these settings. Call after Validate.
func (c Config) Engine() engine.Config {
	s, _ := c.strategy()
	return engine.Config{
		Preparation: engine.Preparation{
			Mode:         c.Mode(),
			Wildcards:    c.Wildcards,
			Delimiter:    c.Delim(),
			ILEquivalent: c.ILEquivalent,
		},
		Strategy: s,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
