// internal/cli/flags.go
package cli

import (
	"github.com/spf13/pflag"

	"microtpct/internal/config"
	"microtpct/internal/output"
	"microtpct/internal/sanitize"
)

// FlagConfig names the YAML settings file.
const FlagConfig = "config"

// RegisterGlobalFlags adds the flags every command inherits.
func RegisterGlobalFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "YAML settings file (flags > MICROTPCT_* env > file > defaults)")
	fs.String(config.KeyLogLevel, config.DefaultLogLevel, "log level: debug | info | warn | error")
	fs.Bool(config.KeyQuiet, false, "only log errors")
}

// RegisterInputFlags adds the FASTA inputs and the ambiguous-residue set.
func RegisterInputFlags(fs *pflag.FlagSet) {
	fs.StringP(config.KeyQueries, "q", "", "query (peptide) FASTA, '-' for stdin, .gz ok [*]")
	fs.StringP(config.KeyTargets, "t", "", "target (protein) FASTA, '-' for stdin, .gz ok [*]")
	fs.String(config.KeyWildcards, sanitize.DefaultWildcards, "ambiguous-residue symbols in targets")
}

// RegisterMatchFlags adds everything a matching run takes.
func RegisterMatchFlags(fs *pflag.FlagSet) {
	RegisterInputFlags(fs)

	// matching
	fs.Bool(config.KeyWildcard, false, "ambiguous target residues match any single query residue")
	fs.Bool(config.KeyILEquivalent, false, "treat isoleucine and leucine as the same residue")
	fs.String(config.KeyStrategy, config.DefaultStrategy, "matching strategy: scan | aho")

	// output
	fs.StringP(config.KeyDelimiter, "d", string(output.DefaultDelimiter), "field delimiter: ';' | ',' | tab")
	fs.StringP(config.KeyFormat, "f", config.DefaultFormat, "output format: text | json | jsonl")
	fs.StringP(config.KeyOut, "o", "", "output file (default stdout)")
	fs.Bool(config.KeyNoHeader, false, "suppress the header row in text output")
	fs.String(config.KeyStats, "", "write a YAML run summary to this file")

	// performance
	fs.Int(config.KeyThreads, 0, "number of worker goroutines (0 = all CPUs)")
	fs.Int(config.KeyBatchSize, config.DefaultBatchSize, "queries matched per batch")

	fs.Int(config.KeyNoMatchExitCode, 0, "exit code when no query matched any target")
}
