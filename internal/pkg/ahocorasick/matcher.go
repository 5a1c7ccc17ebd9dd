package ahocorasick

import (
	"iter"
	"slices"
)

// Search scans text and returns a lazy sequence of every pattern occurrence,
// including overlapping ones. It may be called any number of times after
// Compile; each returned sequence is independent and restartable.
//
// Matches are produced as the scan advances: breaking out of the range loop
// stops the scan without consuming the rest of the text. Matches ending at
// the same position are yielded in a run-to-run stable but otherwise
// unspecified order.
func (a *Automaton[S]) Search(text []S) (iter.Seq[Match[S]], error) {
	return a.SearchSeq(slices.Values(text))
}

// SearchSeq is Search over an arbitrary finite sequence of symbols, for
// streaming input that never materializes as a slice. The symbol source is
// consumed exactly once per returned sequence and only as far as the caller
// pulls matches.
func (a *Automaton[S]) SearchSeq(symbols iter.Seq[S]) (iter.Seq[Match[S]], error) {
	if !a.built {
		return nil, ErrNotBuilt
	}
	if a.dense {
		return a.searchDense(symbols), nil
	}
	return a.searchSparse(symbols), nil
}

// searchSparse follows failure links at scan time.
func (a *Automaton[S]) searchSparse(symbols iter.Seq[S]) iter.Seq[Match[S]] {
	return func(yield func(Match[S]) bool) {
		state := 0
		i := 0
		for c := range symbols {
			i++

			// Fall back until some state has a transition for c, or
			// the root is reached.
			for state != 0 {
				if _, ok := a.next[state][c]; ok {
					break
				}
				state = a.fail[state]
			}
			// Missing map entries read as 0: a symbol with no
			// transition from the root drops back to the root.
			state = a.next[state][c]

			if !a.emit(state, i, yield) {
				return
			}
		}
	}
}

// searchDense transitions directly through the closed table. An absent entry
// means the symbol was never seen during insertion, so the scan falls back
// to the root (the map's zero value).
func (a *Automaton[S]) searchDense(symbols iter.Seq[S]) iter.Seq[Match[S]] {
	return func(yield func(Match[S]) bool) {
		state := 0
		i := 0
		for c := range symbols {
			i++
			state = a.next[state][c]
			if !a.emit(state, i, yield) {
				return
			}
		}
	}
}

// emit yields every pattern ending at position i (1-indexed, just past the
// last consumed symbol) while the automaton sits in state. Returns false
// once the consumer stops pulling.
func (a *Automaton[S]) emit(state, i int, yield func(Match[S]) bool) bool {
	for _, p := range a.out[state] {
		w := a.patterns[p]
		if !yield(Match[S]{Pattern: w, Index: p, Pos: i - len(w)}) {
			return false
		}
	}
	return true
}

// FindAll is Search collected into a slice, for callers that want the whole
// result set up front.
func (a *Automaton[S]) FindAll(text []S) ([]Match[S], error) {
	seq, err := a.Search(text)
	if err != nil {
		return nil, err
	}
	var matches []Match[S]
	for m := range seq {
		matches = append(matches, m)
	}
	return matches, nil
}
