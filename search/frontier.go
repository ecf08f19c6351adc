package search

import "container/heap"

// entry is a single frontier record: a claim that state is reachable at cost
// through pred. Entries are never updated in place; an improvement pushes a
// new entry and the old one goes stale.
type entry[S comparable, C Number] struct {
	priority C      // cost + heuristic(state)
	cost     C      // cost from start at push time
	state    S      // state reached
	pred     S      // predecessor state; meaningless when !hasPred
	hasPred  bool   // false only for the start entry
	seq      uint64 // insertion sequence number, final tie-break
}

// frontier is a min-priority queue of search entries.
//
// Ordering is a single composite key:
//  1. priority ascending
//  2. cost from start ascending
//  3. caller tie-break over states, if configured
//  4. insertion sequence ascending
//
// Multiple entries for the same state may coexist.
type frontier[S comparable, C Number] struct {
	h       entryHeap[S, C]
	nextSeq uint64
}

// newFrontier returns an empty frontier. less may be nil.
func newFrontier[S comparable, C Number](less func(a, b S) bool) *frontier[S, C] {
	f := &frontier[S, C]{h: entryHeap[S, C]{less: less}}
	heap.Init(&f.h)

	return f
}

// Len returns the number of entries, stale ones included.
func (f *frontier[S, C]) Len() int { return f.h.Len() }

// Push inserts an entry and stamps it with the next sequence number.
func (f *frontier[S, C]) Push(e entry[S, C]) {
	e.seq = f.nextSeq
	f.nextSeq++
	heap.Push(&f.h, e)
}

// Pop removes and returns the minimum entry. ok is false when empty.
func (f *frontier[S, C]) Pop() (e entry[S, C], ok bool) {
	if f.h.Len() == 0 {
		return e, false
	}

	return heap.Pop(&f.h).(entry[S, C]), true
}

// entryHeap implements heap.Interface over entries.
type entryHeap[S comparable, C Number] struct {
	items []entry[S, C]
	less  func(a, b S) bool
}

func (h entryHeap[S, C]) Len() int { return len(h.items) }

func (h entryHeap[S, C]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if h.less != nil {
		if h.less(a.state, b.state) {
			return true
		}
		if h.less(b.state, a.state) {
			return false
		}
	}

	return a.seq < b.seq
}

func (h entryHeap[S, C]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[S, C]) Push(x any) { h.items = append(h.items, x.(entry[S, C])) }

func (h *entryHeap[S, C]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero entry[S, C]
	old[n-1] = zero
	h.items = old[:n-1]

	return item
}
