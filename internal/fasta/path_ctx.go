// internal/fasta/path_ctx.go
package fasta

import (
	"context"
	"io"
)

// StreamCtx scans FASTA from r and calls emit for every non-empty record.
// Cancellation via ctx is honored between records. Return a non-nil error
// from emit to stop early. It returns the number of skipped empty records.
func StreamCtx(ctx context.Context, r io.Reader, source string, emit func(Record) error) (int, error) {
	sc := NewScanner(r, source)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return sc.Skipped(), ctx.Err()
		default:
		}
		if err := emit(sc.Record()); err != nil {
			return sc.Skipped(), err
		}
	}
	return sc.Skipped(), sc.Err()
}

// StreamPathCtx opens path and streams its records to emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) (int, error) {
	rc, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return StreamCtx(ctx, rc, SourceName(path), emit)
}

// ReadAllPath materializes every record of path, in file order.
func ReadAllPath(ctx context.Context, path string) ([]Record, int, error) {
	var recs []Record
	skipped, err := StreamPathCtx(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return recs, skipped, nil
}
