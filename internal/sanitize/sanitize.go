// Package sanitize normalizes records before they reach the matching engine.
package sanitize

import "strings"

const (
	// Placeholder replaces header characters that collide with the output
	// delimiter.
	Placeholder = '_'

	// WildcardToken marks an ambiguous target residue. It matches any single
	// query byte. FASTA body lines never carry a NUL byte, so the token cannot
	// collide with a real residue.
	WildcardToken byte = 0x00

	// DefaultWildcards is the conventional unknown-residue code.
	DefaultWildcards = "X"
)

// Header makes id safe to embed as one field of a delimited row: every
// delimiter byte, and any line break, becomes Placeholder.
func Header(id string, delim byte) string {
	if strings.IndexByte(id, delim) < 0 && !strings.ContainsAny(id, "\r\n") {
		return id
	}
	b := []byte(id)
	for i, c := range b {
		if c == delim || c == '\r' || c == '\n' {
			b[i] = Placeholder
		}
	}
	return string(b)
}

// WildcardForm copies residues, rewriting every byte listed in symbols to
// WildcardToken. It reports whether any symbol was present.
func WildcardForm(residues, symbols string) ([]byte, bool) {
	var set [256]bool
	for i := 0; i < len(symbols); i++ {
		set[symbols[i]] = true
	}
	out := []byte(residues)
	found := false
	for i, c := range out {
		if set[c] {
			out[i] = WildcardToken
			found = true
		}
	}
	return out, found
}

// ContainsAny reports whether residues carry any of the wildcard symbols.
func ContainsAny(residues, symbols string) bool {
	return symbols != "" && strings.ContainsAny(residues, symbols)
}

// LeucineIsoleucine maps I and L to J. Mass spectrometry cannot tell the two
// residues apart, so both sides of a comparison are collapsed when asked.
func LeucineIsoleucine(residues string) string {
	if !strings.ContainsAny(residues, "IL") {
		return residues
	}
	return ilReplacer.Replace(residues)
}

var ilReplacer = strings.NewReplacer("I", "J", "L", "J")
