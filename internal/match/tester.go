// Package match holds the containment tests used by the engine.
//
// A ContainmentTester answers one question: where does pattern first occur
// in text? Strict and wildcard semantics are interchangeable behind it, and
// Automaton answers the same question for many patterns in one pass.
package match

import (
	"bytes"

	"microtpct/internal/sanitize"
)

// ContainmentTester finds the leftmost occurrence of pattern in text.
// It returns the zero-based offset, or -1 when pattern does not occur.
// An empty pattern or an empty text never matches.
type ContainmentTester interface {
	FindFirst(pattern, text []byte) int
}

// Literal is strict, byte-for-byte substring containment.
type Literal struct{}

func (Literal) FindFirst(pattern, text []byte) int {
	if len(pattern) == 0 || len(text) < len(pattern) {
		return -1
	}
	return bytes.Index(text, pattern)
}

// Wildcard treats sanitize.WildcardToken in text as matching any single
// pattern byte. Every pattern byte is compared literally; nothing in the
// pattern is interpreted.
type Wildcard struct{}

func (Wildcard) FindFirst(pattern, text []byte) int {
	pl := len(pattern)
	if pl == 0 || len(text) < pl {
		return -1
	}
	// No token in text: strict search is exact and faster.
	if bytes.IndexByte(text, sanitize.WildcardToken) < 0 {
		return bytes.Index(text, pattern)
	}
	end := len(text) - pl
window:
	for pos := 0; pos <= end; pos++ {
		for j := 0; j < pl; j++ {
			t := text[pos+j]
			if t != pattern[j] && t != sanitize.WildcardToken {
				continue window
			}
		}
		return pos
	}
	return -1
}

var (
	_ ContainmentTester = Literal{}
	_ ContainmentTester = Wildcard{}
)
