// internal/app/info.go
package app

import (
	"fmt"
	"io"
	"strings"

	"microtpct/internal/engine"
	"microtpct/internal/sanitize"
	"microtpct/internal/version"
	"microtpct/internal/writers"
)

// Info lists what the binary can do.
func Info(w io.Writer) error {
	_, err := fmt.Fprintf(w, `microtpct %s

modes:
  %-10s literal substring containment
  %-10s ambiguous target residues (default %q) match any query residue

strategies:
  %-10s every query is tested against every target
  %-10s one Aho–Corasick automaton per query batch, one pass per target

formats:     %s
delimiters:  ';' (default), ',', tab
`,
		version.Version,
		engine.ModeStrict, engine.ModeWildcard, sanitize.DefaultWildcards,
		engine.StrategyScan, engine.StrategyAho,
		strings.Join(writers.RegisteredFormats(), ", "),
	)
	return err
}
