package match

/*
Aho–Corasick multi-pattern scanner.

- NewAutomaton(patterns) builds a trie with failure links over the distinct
  bytes the patterns use, then resolves every transition so the scan is one
  table lookup per text byte.
- FirstOccurrencesInto(text, dst) reports, for each pattern, the leftmost start
  offset in text (or -1).

Text bytes outside the pattern alphabet can't be part of any match and send
the scan back to the root.
*/

// Automaton finds every pattern of a batch in one pass over a text.
type Automaton struct {
	alpha   [256]int16 // byte -> column, -1 => not in any pattern
	width   int
	delta   []int32 // state*width + column -> next state
	out     [][]int32
	lengths []int
}

// NewAutomaton builds the automaton for patterns. Empty patterns are kept in
// the index space but never reported.
func NewAutomaton(patterns [][]byte) *Automaton {
	a := &Automaton{lengths: make([]int, len(patterns))}
	for i := range a.alpha {
		a.alpha[i] = -1
	}
	for _, p := range patterns {
		for _, b := range p {
			if a.alpha[b] < 0 {
				a.alpha[b] = int16(a.width)
				a.width++
			}
		}
	}
	w := a.width
	if w == 0 {
		w = 1
	}

	// 1) Build trie edges (0 => absent; root is state 0)
	a.delta = make([]int32, w)
	a.out = make([][]int32, 1)
	for i, p := range patterns {
		a.lengths[i] = len(p)
		if len(p) == 0 {
			continue
		}
		cur := int32(0)
		for _, b := range p {
			idx := int(cur)*w + int(a.alpha[b])
			if a.delta[idx] == 0 {
				a.delta = append(a.delta, make([]int32, w)...)
				a.out = append(a.out, nil)
				a.delta[idx] = int32(len(a.out) - 1)
			}
			cur = a.delta[idx]
		}
		a.out[cur] = append(a.out[cur], int32(i))
	}

	// 2) BFS to set fail links, propagate outputs, and resolve missing edges
	fail := make([]int32, len(a.out))
	queue := make([]int32, 0, len(a.out))
	for c := 0; c < w; c++ {
		if child := a.delta[c]; child != 0 {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		f := fail[r]
		if len(a.out[f]) > 0 {
			a.out[r] = append(a.out[r], a.out[f]...)
		}
		for c := 0; c < w; c++ {
			idx := int(r)*w + c
			s := a.delta[idx]
			if s == 0 {
				// resolved through the failure state; f < r in BFS order
				a.delta[idx] = a.delta[int(f)*w+c]
				continue
			}
			fail[s] = a.delta[int(f)*w+c]
			queue = append(queue, s)
		}
	}
	return a
}

// Len returns the number of patterns the automaton was built from.
func (a *Automaton) Len() int { return len(a.lengths) }

// FirstOccurrencesInto scans text once and returns, indexed like the
// patterns, the zero-based start of each pattern's leftmost occurrence or -1.
// dst is reused when it has room.
func (a *Automaton) FirstOccurrencesInto(text []byte, dst []int) []int {
	first := dst[:0]
	if cap(first) < len(a.lengths) {
		first = make([]int, 0, len(a.lengths))
	}
	first = first[:len(a.lengths)]
	for i := range first {
		first[i] = -1
	}
	a.Scan(text, func(pattern, start int) {
		if first[pattern] < 0 {
			first[pattern] = start
		}
	})
	return first
}

// Scan calls hit for every (pattern, start) occurrence in text, in order of
// match end.
func (a *Automaton) Scan(text []byte, hit func(pattern, start int)) {
	if a.width == 0 {
		return
	}
	w := a.width
	state := int32(0)
	for i := 0; i < len(text); i++ {
		col := a.alpha[text[i]]
		if col < 0 {
			state = 0
			continue
		}
		state = a.delta[int(state)*w+int(col)]
		for _, idx := range a.out[state] {
			hit(int(idx), i-a.lengths[idx]+1)
		}
	}
}
