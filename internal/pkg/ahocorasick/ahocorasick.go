// Package ahocorasick provides an implementation of the Aho-Corasick string
// matching algorithm. The Aho-Corasick algorithm matches multiple patterns
// simultaneously against an input in O(n + m + z) time, where n is the input
// length, m is the total pattern length, and z is the number of matches,
// reporting every occurrence of every pattern including overlapping ones.
//
// The automaton is generic over the symbol type: nothing in the algorithm
// depends on a specific alphabet, so text may be bytes, runes, or any
// comparable token type.
//
// Usage follows a strict three-phase lifecycle:
//
//	a := ahocorasick.New[byte]()
//	a.Insert([]byte("he"))     // phase 1: insert patterns
//	a.Insert([]byte("she"))
//	a.Compile(false)           // phase 2: compile, exactly once
//	seq, _ := a.Search(text)   // phase 3: search, any number of times
//	for m := range seq { ... }
//
// Once compiled the automaton is immutable and safe for any number of
// concurrent searchers; each search owns only its own traversal state.
package ahocorasick

import "errors"

// Lifecycle contract violations. These are programming errors surfaced
// immediately, never retried or recovered internally.
var (
	// ErrAlreadyBuilt is returned by Insert and Compile once the automaton
	// has been compiled.
	ErrAlreadyBuilt = errors.New("ahocorasick: automaton already built")

	// ErrNotBuilt is returned by Search before the automaton has been
	// compiled.
	ErrNotBuilt = errors.New("ahocorasick: automaton not built")

	// ErrEmptyPattern is returned by Insert for a zero-length pattern,
	// which would map to the root state and can carry no output.
	ErrEmptyPattern = errors.New("ahocorasick: empty pattern not allowed")
)

// Automaton is an Aho-Corasick automaton over symbols of type S.
//
// States are plain integer indices; state 0 is the root. All per-state data
// lives in the parallel tables below, indexed by state id.
type Automaton[S comparable] struct {
	// next holds the per-state transition maps. During insertion the map
	// keys of next[s] double as s's alphabet (the set of symbols with an
	// outgoing transition), which is what the compiler walks. In
	// deterministic mode Compile closes these maps so that matching never
	// needs to follow a failure link.
	next []map[S]int

	// fail holds the failure links: fail[s] is the state reached by the
	// longest proper suffix of s's path that is itself a path from the
	// root. Allocated by Compile, and released again when the automaton
	// is compiled deterministically (the closed transition table makes it
	// unnecessary).
	fail []int

	// out holds the output sets: out[s] lists indices into patterns for
	// every pattern whose occurrence ends when the automaton is in state
	// s, including those inherited along the failure chain.
	out [][]int

	// patterns interns each inserted pattern exactly once, in insertion
	// order. Output sets reference patterns by index so that states
	// sharing a suffix never duplicate pattern symbols.
	patterns [][]S

	// built flips when Compile succeeds; no table mutates afterwards.
	built bool

	// dense records whether Compile closed the transition table.
	dense bool
}

// Match is a single pattern occurrence reported by a search.
type Match[S comparable] struct {
	// Pattern is the matched pattern as inserted. It aliases the
	// automaton's interned copy and must not be modified.
	Pattern []S

	// Index is the insertion index of the pattern (0-based, in the order
	// patterns were first inserted).
	Index int

	// Pos is the 0-indexed start offset of the occurrence: the pattern
	// occupies text positions [Pos, Pos+len(Pattern)).
	Pos int
}

// New creates an empty automaton with only the root state.
func New[S comparable]() *Automaton[S] {
	return &Automaton[S]{
		next: []map[S]int{make(map[S]int)},
		out:  [][]int{nil},
	}
}

// PatternCount returns the number of distinct patterns inserted.
func (a *Automaton[S]) PatternCount() int {
	return len(a.patterns)
}

// Built reports whether Compile has run.
func (a *Automaton[S]) Built() bool {
	return a.built
}

// Stats describes the size and mode of an automaton.
type Stats struct {
	// States is the total number of states, root included.
	States int

	// Transitions is the total number of transition table entries. In
	// deterministic mode this includes the entries added by the closure,
	// which is the memory cost that mode trades for faster matching.
	Transitions int

	// Patterns is the number of distinct patterns inserted.
	Patterns int

	// Built reports whether the automaton has been compiled.
	Built bool

	// Deterministic reports whether the transition table was closed.
	Deterministic bool
}

// Stats returns the current size and mode of the automaton.
func (a *Automaton[S]) Stats() Stats {
	transitions := 0
	for _, m := range a.next {
		transitions += len(m)
	}
	return Stats{
		States:        len(a.next),
		Transitions:   transitions,
		Patterns:      len(a.patterns),
		Built:         a.built,
		Deterministic: a.dense,
	}
}
