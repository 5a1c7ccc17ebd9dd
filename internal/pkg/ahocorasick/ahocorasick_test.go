package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build inserts words and compiles, failing the test on any lifecycle error.
func build(t *testing.T, deterministic bool, words ...string) *Automaton[byte] {
	t.Helper()
	a := New[byte]()
	for _, w := range words {
		require.NoError(t, a.Insert([]byte(w)))
	}
	require.NoError(t, a.Compile(deterministic))
	return a
}

func TestNew(t *testing.T) {
	a := New[byte]()

	stats := a.Stats()
	assert.Equal(t, 1, stats.States) // root only
	assert.Equal(t, 0, stats.Transitions)
	assert.Equal(t, 0, stats.Patterns)
	assert.False(t, stats.Built)
	assert.False(t, a.Built())
}

func TestInsert_StateGrowth(t *testing.T) {
	a := New[byte]()

	require.NoError(t, a.Insert([]byte("he")))
	assert.Equal(t, 3, a.Stats().States) // root + h + he

	// "hers" shares the "he" prefix, only "r" and "s" are new
	require.NoError(t, a.Insert([]byte("hers")))
	assert.Equal(t, 5, a.Stats().States)

	require.NoError(t, a.Insert([]byte("she")))
	assert.Equal(t, 8, a.Stats().States)

	assert.Equal(t, 3, a.PatternCount())
}

func TestInsert_EmptyPattern(t *testing.T) {
	a := New[byte]()
	err := a.Insert(nil)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	err = a.Insert([]byte{})
	assert.ErrorIs(t, err, ErrEmptyPattern)

	// Nothing was allocated for the rejected patterns
	assert.Equal(t, 1, a.Stats().States)
	assert.Equal(t, 0, a.PatternCount())
}

func TestInsert_Duplicate(t *testing.T) {
	a := New[byte]()
	require.NoError(t, a.Insert([]byte("he")))
	require.NoError(t, a.Insert([]byte("he")))
	assert.Equal(t, 1, a.PatternCount())

	require.NoError(t, a.Compile(false))

	matches, err := a.FindAll([]byte("hehe"))
	require.NoError(t, err)
	assert.Len(t, matches, 2) // one per occurrence, not per insertion
}

func TestInsert_AfterCompile(t *testing.T) {
	a := build(t, false, "he")
	err := a.Insert([]byte("she"))
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
}

func TestCompile_Twice(t *testing.T) {
	for _, deterministic := range []bool{false, true} {
		a := build(t, deterministic, "he")
		err := a.Compile(deterministic)
		assert.ErrorIs(t, err, ErrAlreadyBuilt)
	}
}

func TestSearch_BeforeCompile(t *testing.T) {
	a := New[byte]()
	require.NoError(t, a.Insert([]byte("he")))

	_, err := a.Search([]byte("he"))
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = a.FindAll([]byte("he"))
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestCompile_DeterministicClosesTable(t *testing.T) {
	sparse := build(t, false, "he", "she", "his", "hers")
	dense := build(t, true, "he", "she", "his", "hers")

	assert.Equal(t, sparse.Stats().States, dense.Stats().States)
	assert.Greater(t, dense.Stats().Transitions, sparse.Stats().Transitions)
	assert.True(t, dense.Stats().Deterministic)
	assert.False(t, sparse.Stats().Deterministic)

	// The failure table is gone once direct transitions exist
	assert.Nil(t, dense.fail)
	assert.NotNil(t, sparse.fail)
}

func TestStats_Built(t *testing.T) {
	a := build(t, false, "he")
	stats := a.Stats()
	assert.True(t, stats.Built)
	assert.True(t, a.Built())
	assert.Equal(t, 1, stats.Patterns)
}
