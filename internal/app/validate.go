// internal/app/validate.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"microtpct/internal/appcore"
	"microtpct/internal/config"
	"microtpct/internal/fasta"
	"microtpct/internal/sanitize"
	"microtpct/internal/writers"
)

// InputReport summarizes one parsed FASTA input.
type InputReport struct {
	Role      string // "queries" or "targets"
	Source    string
	Records   int
	Skipped   int
	Residues  int
	Wildcards int // records carrying an ambiguous-residue symbol
}

func (r InputReport) String() string {
	return fmt.Sprintf("%s %s: %s records, %s empty skipped, %s residues, %s with ambiguous residues",
		r.Role, r.Source,
		humanize.Comma(int64(r.Records)), humanize.Comma(int64(r.Skipped)),
		humanize.Comma(int64(r.Residues)), humanize.Comma(int64(r.Wildcards)))
}

// Inspect parses path completely and counts what it holds.
func Inspect(ctx context.Context, role, path, symbols string) (InputReport, error) {
	rep := InputReport{Role: role, Source: fasta.SourceName(path)}
	skipped, err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		rep.Records++
		rep.Residues += r.Len()
		if sanitize.ContainsAny(r.Residues, symbols) {
			rep.Wildcards++
		}
		return nil
	})
	rep.Skipped = skipped
	return rep, err
}

// Validate reports on every configured input and returns the exit code.
func Validate(ctx context.Context, stdout io.Writer, log *slog.Logger, c config.Config) int {
	inputs := []struct{ role, path string }{
		{"queries", c.Queries},
		{"targets", c.Targets},
	}
	for _, in := range inputs {
		if in.path == "" {
			continue
		}
		rep, err := Inspect(ctx, in.role, in.path, c.Wildcards)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return appcore.ExitCanceled
			}
			log.Error("validate", "input", in.role, "err", err)
			return appcore.ExitIO
		}
		if _, err := fmt.Fprintln(stdout, rep); err != nil && !writers.IsBrokenPipe(err) {
			return appcore.ExitIO
		}
		if rep.Records == 0 {
			log.Warn("input holds no records", "input", in.role, "source", rep.Source)
		}
	}
	return appcore.ExitOK
}
