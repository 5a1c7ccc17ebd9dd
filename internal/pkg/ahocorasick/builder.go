package ahocorasick

import "slices"

// Insert adds a pattern to the automaton. It may be called any number of
// times before Compile, never after. Inserting a pattern that is already
// present is a no-op.
//
// Each pattern walks the trie from the root, allocating a fresh state for
// every transition seen for the first time, and finally records the pattern
// in the output set of the state it ends on. Insert may grow the state space
// by up to len(pattern) new states.
func (a *Automaton[S]) Insert(pattern []S) error {
	if a.built {
		return ErrAlreadyBuilt
	}
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}

	state := 0
	for _, c := range pattern {
		s, ok := a.next[state][c]
		if !ok {
			// Explicit get-or-create: new state ids are allocated
			// monotonically, so len(next) is the next free id.
			s = len(a.next)
			a.next[state][c] = s
			a.next = append(a.next, make(map[S]int))
			a.out = append(a.out, nil)
		}
		state = s
	}

	// Before compilation a state's output set holds at most its own word
	// (the word that spells exactly the path to it), so any entry here
	// means this pattern was inserted before.
	if len(a.out[state]) > 0 {
		return nil
	}

	a.patterns = append(a.patterns, slices.Clone(pattern))
	a.out[state] = append(a.out[state], len(a.patterns)-1)
	return nil
}

// Compile finishes the automaton. It must be called exactly once, after all
// insertions and before any search.
//
// Failure links are computed breadth-first: a state's failure link depends
// only on states at equal or shallower depth, and the output merge must read
// an already-finalized set, so shallower states are always processed first.
//
// With deterministic set, Compile additionally closes the transition table:
// every state inherits the (already closed) transitions of its failure
// target for each symbol it lacks, so matching never follows a failure link.
// This trades memory — up to O(states x alphabet) extra entries — for fewer
// indirections per scanned symbol, and is worth it mainly for small
// alphabets and hot scan paths. The failure table is released afterwards.
func (a *Automaton[S]) Compile(deterministic bool) error {
	if a.built {
		return ErrAlreadyBuilt
	}

	a.fail = make([]int, len(a.next))

	// Depth-1 states fail to the root.
	queue := make([]int, 0, len(a.next))
	for _, s := range a.next[0] {
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		for c, s := range a.next[r] {
			queue = append(queue, s)

			// Walk r's failure chain until a state with a transition
			// for c turns up, or the root is reached. Iterative on
			// purpose: the chain is bounded by the state's depth.
			f := a.fail[r]
			for f != 0 {
				if _, ok := a.next[f][c]; ok {
					break
				}
				f = a.fail[f]
			}
			// Missing map entries read as 0, the root.
			a.fail[s] = a.next[f][c]

			// Merge the failure target's outputs exactly once, now
			// that fail[s] is fixed. BFS order guarantees the
			// target's own set is already final.
			if fo := a.out[a.fail[s]]; len(fo) > 0 {
				a.out[s] = append(a.out[s], fo...)
			}
		}

		if deterministic {
			// fail[r] was popped earlier, so its map is already
			// closed; one copy inherits its whole failure chain.
			// Done after the child loop above so that only true
			// trie children were enqueued.
			for c, t := range a.next[a.fail[r]] {
				if _, ok := a.next[r][c]; !ok {
					a.next[r][c] = t
				}
			}
		}
	}

	if deterministic {
		a.fail = nil
	}
	a.built = true
	a.dense = deterministic
	return nil
}
