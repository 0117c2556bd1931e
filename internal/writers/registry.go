// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"microtpct/internal/engine"
)

// Options are the presentation settings shared by every format.
type Options struct {
	Delimiter byte // text only
	Header    bool // text only
}

// StreamFunc drains in and writes it to w.
type StreamFunc func(w io.Writer, in <-chan engine.QueryResult, o Options) error

// MatchWriters maps a format to its handler. Register in init() blocks from
// the format files.
var MatchWriters = map[string]StreamFunc{}

// RegisterMatch is idempotent last-wins.
func RegisterMatch(format string, fn StreamFunc) { MatchWriters[format] = fn }

// RegisteredFormats lists the registered format names, sorted.
func RegisteredFormats() []string {
	out := make([]string, 0, len(MatchWriters))
	for k := range MatchWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StreamMatches dispatches to the handler registered for format.
func StreamMatches(format string, w io.Writer, in <-chan engine.QueryResult, o Options) error {
	fn, ok := MatchWriters[format]
	if !ok {
		return fmt.Errorf("unknown match format %q (no writer registered)", format)
	}
	return fn(w, in, o)
}
