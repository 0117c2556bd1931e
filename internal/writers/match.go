// internal/writers/match.go
package writers

import (
	"io"

	"microtpct/internal/engine"
	"microtpct/internal/output"
)

func init() {
	RegisterMatch(output.FormatText, func(w io.Writer, in <-chan engine.QueryResult, o Options) error {
		return output.StreamText(w, in, o.Delimiter, o.Header)
	})
	RegisterMatch(output.FormatJSON, func(w io.Writer, in <-chan engine.QueryResult, _ Options) error {
		var buf []engine.QueryResult
		for qr := range in {
			buf = append(buf, qr)
		}
		return output.WriteJSON(w, buf)
	})
}

// StartMatchWriter spins up a writer goroutine for engine.QueryResult items.
// A write error is reported at once; the goroutine then keeps draining in so
// senders never block.
func StartMatchWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.QueryResult, <-chan error) {
	if format == output.FormatJSONL {
		return StartMatchJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.QueryResult, bufSize)
	errCh := make(chan error, 1)

	go func() {
		errCh <- StreamMatches(format, out, in, o)
		for range in {
		}
	}()

	return in, errCh
}
