package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[S comparable, C Number](f *frontier[S, C]) []S {
	var out []S
	for {
		e, ok := f.Pop()
		if !ok {
			return out
		}
		out = append(out, e.state)
	}
}

func TestFrontier_EmptyPop(t *testing.T) {
	f := newFrontier[string, int](nil)
	_, ok := f.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_OrdersByPriority(t *testing.T) {
	f := newFrontier[string, int](nil)
	f.Push(entry[string, int]{priority: 5, state: "c"})
	f.Push(entry[string, int]{priority: 1, state: "a"})
	f.Push(entry[string, int]{priority: 3, state: "b"})
	require.Equal(t, 3, f.Len())

	assert.Equal(t, []string{"a", "b", "c"}, drain(f))
}

func TestFrontier_TiesByCostThenInsertion(t *testing.T) {
	f := newFrontier[string, int](nil)
	f.Push(entry[string, int]{priority: 4, cost: 3, state: "late-high"})
	f.Push(entry[string, int]{priority: 4, cost: 1, state: "low"})
	f.Push(entry[string, int]{priority: 4, cost: 3, state: "later-high"})

	assert.Equal(t, []string{"low", "late-high", "later-high"}, drain(f))
}

func TestFrontier_CustomTieBreak(t *testing.T) {
	f := newFrontier[string, int](func(a, b string) bool { return a < b })
	f.Push(entry[string, int]{priority: 2, cost: 2, state: "z"})
	f.Push(entry[string, int]{priority: 2, cost: 2, state: "m"})
	f.Push(entry[string, int]{priority: 2, cost: 2, state: "a"})
	f.Push(entry[string, int]{priority: 1, cost: 1, state: "zz"})

	assert.Equal(t, []string{"zz", "a", "m", "z"}, drain(f))
}

func TestFrontier_DuplicatesAllowed(t *testing.T) {
	f := newFrontier[string, int](nil)
	f.Push(entry[string, int]{priority: 4, cost: 4, state: "x"})
	f.Push(entry[string, int]{priority: 2, cost: 2, state: "x"})

	first, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, first.cost)
	second, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, 4, second.cost)
}

func TestLedger_RecordOnlyImproves(t *testing.T) {
	l := newLedger[string, int]()
	_, ok := l.Best("a")
	assert.False(t, ok)

	assert.True(t, l.record("a", 0, "", false))
	assert.True(t, l.record("b", 5, "a", true))
	assert.False(t, l.record("b", 5, "x", true), "equal cost must not overwrite")
	assert.False(t, l.record("b", 7, "x", true), "higher cost must not overwrite")
	assert.True(t, l.record("b", 3, "c", true))

	cost, ok := l.Best("b")
	assert.True(t, ok)
	assert.Equal(t, 3, cost)
	pred, ok := l.Predecessor("b")
	assert.True(t, ok)
	assert.Equal(t, "c", pred)

	_, ok = l.Predecessor("a")
	assert.False(t, ok, "start has no predecessor")
	assert.Equal(t, 2, l.Len())
}

func TestLedger_Path(t *testing.T) {
	l := newLedger[int, int]()
	l.record(1, 0, 0, false)
	l.record(2, 1, 1, true)
	l.record(3, 2, 2, true)
	l.record(4, 3, 3, true)

	assert.Equal(t, []int{1, 2, 3, 4}, l.Path(4))
	assert.Equal(t, []int{1}, l.Path(1))
	assert.Nil(t, l.Path(99))
}

func TestLedger_All(t *testing.T) {
	l := newLedger[string, int]()
	l.record("a", 0, "", false)
	l.record("b", 2, "a", true)
	l.record("b", 1, "a", true)

	got := map[string]int{}
	for s, c := range l.All() {
		got[s] = c
	}
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, got)
}
