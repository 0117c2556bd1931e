package appcore

import (
	"io"

	"microtpct/internal/engine"
	"microtpct/internal/writers"
)

// WriterFactory starts the output goroutine of a run. The error channel
// yields the first write error as soon as it happens, or nil once the input
// channel is closed and everything is written.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.QueryResult, <-chan error)
}

type MatchWriterFactory struct {
	Format    string
	Delimiter byte
	Header    bool
}

func NewMatchWriterFactory(format string, delim byte, header bool) MatchWriterFactory {
	return MatchWriterFactory{Format: format, Delimiter: delim, Header: header}
}

func (w MatchWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.QueryResult, <-chan error) {
	return writers.StartMatchWriter(out, w.Format, writers.Options{Delimiter: w.Delimiter, Header: w.Header}, bufSize)
}
