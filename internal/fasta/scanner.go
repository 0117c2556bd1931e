// internal/fasta/scanner.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderMarker starts a record header line.
	HeaderMarker = '>'
	// StdinPath reads from standard input.
	StdinPath = "-"

	maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
)

// Record is one parsed FASTA entry. ID is the header line without the
// marker; Residues is the concatenated body with no line breaks.
type Record struct {
	ID       string
	Residues string
}

// Len returns the number of residues.
func (r Record) Len() int { return len(r.Residues) }

// ParseError reports input that cannot be read as FASTA at all.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrBodyBeforeHeader is wrapped by a ParseError when residues appear
// before the first header line.
var ErrBodyBeforeHeader = fmt.Errorf("sequence data before first '%c' header", HeaderMarker)

// ErrNULResidue is wrapped by a ParseError when a sequence line holds a NUL
// byte. NUL is reserved for the matcher's wildcard token.
var ErrNULResidue = errors.New("NUL byte in sequence data")

// Scanner reads records lazily from a FASTA stream.
//
// A header finalizes the previous record. Records without residues are
// skipped and counted, never returned.
type Scanner struct {
	sc     *bufio.Scanner
	source string
	line   int

	id      string
	haveHdr bool
	seq     []byte

	rec     Record
	err     error
	done    bool
	skipped int
}

// NewScanner returns a Scanner reading from r. source names the stream in
// errors.
func NewScanner(r io.Reader, source string) *Scanner {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Scanner{sc: sc, source: source, seq: make([]byte, 0, 1<<12)}
}

// Scan advances to the next non-empty record. It returns false at end of
// stream or on error; check Err afterwards.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.sc.Scan() {
		s.line++
		line := bytes.TrimRight(s.sc.Bytes(), " \t\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == HeaderMarker {
			ok := s.finish()
			s.id = string(line[1:])
			s.haveHdr = true
			if ok {
				return true
			}
			continue
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if !s.haveHdr {
			s.err = &ParseError{Source: s.source, Line: s.line, Err: ErrBodyBeforeHeader}
			s.done = true
			return false
		}
		if bytes.IndexByte(line, 0) >= 0 {
			s.err = &ParseError{Source: s.source, Line: s.line, Err: ErrNULResidue}
			s.done = true
			return false
		}
		s.seq = append(s.seq, line...)
	}
	s.done = true
	if err := s.sc.Err(); err != nil {
		s.err = &ParseError{Source: s.source, Line: s.line + 1, Err: fmt.Errorf("fasta scan: %w", err)}
		return false
	}
	return s.finish()
}

// finish moves the accumulated record into s.rec. It reports false when
// there was nothing to emit.
func (s *Scanner) finish() bool {
	if !s.haveHdr {
		return false
	}
	if len(s.seq) == 0 {
		s.skipped++
		return false
	}
	s.rec = Record{ID: s.id, Residues: string(s.seq)}
	s.seq = s.seq[:0]
	return true
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error { return s.err }

// Skipped returns how many headers had no residues so far.
func (s *Scanner) Skipped() int { return s.skipped }
