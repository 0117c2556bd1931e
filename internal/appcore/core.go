// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"microtpct/internal/config"
	"microtpct/internal/engine"
	"microtpct/internal/fasta"
	"microtpct/internal/output"
	"microtpct/internal/pipeline"
	"microtpct/internal/stats"
	"microtpct/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags or settings
	ExitIO       = 3 // unreadable or unparseable input, failed write
	ExitCanceled = 130
)

// LoadTargets reads and prepares the whole target set for eng.
func LoadTargets(ctx context.Context, log *slog.Logger, path string, eng *engine.Engine) (*engine.TargetSet, int, error) {
	recs, skipped, err := fasta.ReadAllPath(ctx, path)
	if err != nil {
		return nil, skipped, err
	}
	ts := engine.NewTargetSet(recs, eng.Preparation())
	log.Info("targets loaded",
		"source", fasta.SourceName(path),
		"targets", humanize.Comma(int64(ts.Len())),
		"residues", humanize.Comma(int64(ts.Residues())),
		"wildcard_targets", ts.WildcardTargets(),
	)
	if skipped > 0 {
		log.Debug("empty target records skipped", "count", skipped)
	}
	return ts, skipped, nil
}

// Run performs one matching run and returns the process exit code.
func Run(parent context.Context, stdout io.Writer, log *slog.Logger, c config.Config, wf WriterFactory) int {
	start := time.Now()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	eng := engine.New(c.Engine())
	ts, skippedT, err := LoadTargets(ctx, log, c.Targets, eng)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitCanceled
		}
		log.Error("load targets", "err", err)
		return ExitIO
	}
	switch {
	case ts.Len() == 0:
		log.Warn("no targets loaded; every query reports no match")
	case c.Mode() == engine.ModeStrict && ts.WildcardTargets() > 0:
		log.Warn("strict mode: ambiguous residues only match themselves; consider --wildcard",
			"targets", ts.WildcardTargets(), "symbols", c.Wildcards)
	}

	out := stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			log.Error("create output", "err", err)
			return ExitIO
		}
		defer f.Close()
		out = f
	}
	outw := bufio.NewWriterSize(out, 64<<10)

	thr := c.Threads
	if thr <= 0 {
		thr = runtime.GOMAXPROCS(0)
	}
	inCh, writeErr := wf.Start(outw, thr*4)
	// The first writer error cancels the run.
	werrc := make(chan error, 1)
	go func() {
		err := <-writeErr
		if err != nil {
			cancel()
		}
		werrc <- err
	}()

	sum := stats.Summary{
		Mode:            string(c.Mode()),
		Strategy:        string(eng.Config().Strategy),
		Delimiter:       output.DelimiterName(c.Delim()),
		Targets:         ts.Len(),
		SkippedTargets:  skippedT,
		WildcardTargets: ts.WildcardTargets(),
		TargetResidues:  ts.Residues(),
	}
	skippedQ, perr := pipeline.ForEachQuery(ctx,
		pipeline.Config{Threads: thr, BatchSize: c.BatchSize},
		c.Queries, ts, eng,
		func(qr engine.QueryResult) error {
			select {
			case inCh <- qr:
				sum.Add(qr)
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)
	sum.SkippedQueries = skippedQ

	if werr := <-werrc; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error("write output", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error("write output", "err", e)
		return ExitIO
	}
	if f, ok := out.(*os.File); ok && c.Out != "" {
		if e := f.Close(); e != nil {
			log.Error("close output", "err", e)
			return ExitIO
		}
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			log.Warn("canceled", "queries_done", sum.Queries)
			return ExitCanceled
		}
		log.Error("match", "err", perr)
		return ExitIO
	}

	sum.Finish(start)
	if skippedQ > 0 {
		log.Debug("empty query records skipped", "count", skippedQ)
	}
	log.Info("done",
		"queries", humanize.Comma(int64(sum.Queries)),
		"matched", humanize.Comma(int64(sum.MatchedQueries)),
		"unmatched", humanize.Comma(int64(sum.UnmatchedQueries)),
		"rows", humanize.Comma(int64(sum.Rows)),
		"elapsed", sum.Duration,
	)
	if c.Stats != "" {
		if err := sum.WriteFile(c.Stats); err != nil {
			log.Error("stats", "err", err)
			return ExitIO
		}
	}
	if sum.MatchedQueries == 0 {
		return c.NoMatchExitCode
	}
	return ExitOK
}
