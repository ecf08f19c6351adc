package search

import "iter"

// LedgerView is read access to the cost ledger of a run.
type LedgerView[S comparable, C Number] interface {
	// Best returns the best known cost to state; ok is false if state is unknown.
	Best(state S) (cost C, ok bool)
	// Predecessor returns the predecessor on the best known path to state.
	Predecessor(state S) (pred S, ok bool)
	// All yields every recorded state with its best known cost.
	All() iter.Seq2[S, C]
	// Path returns the best known path from start to goal, or nil.
	Path(goal S) []S
	// Len returns the number of recorded states.
	Len() int
}

// ledgerRecord is the ledger's bookkeeping for one state.
type ledgerRecord[S comparable, C Number] struct {
	cost    C
	pred    S
	hasPred bool
}

// ledger maps each discovered state to its best known cost from start and
// the predecessor that achieved it. Recorded costs only ever decrease.
//
// A ledger belongs to one search run and is not safe for concurrent use.
type ledger[S comparable, C Number] struct {
	records map[S]ledgerRecord[S, C]
}

// newLedger returns an empty ledger.
func newLedger[S comparable, C Number]() *ledger[S, C] {
	return &ledger[S, C]{records: make(map[S]ledgerRecord[S, C])}
}

// Best returns the best known cost to state; ok is false if state is unknown.
func (l *ledger[S, C]) Best(state S) (cost C, ok bool) {
	r, ok := l.records[state]

	return r.cost, ok
}

// Predecessor returns the predecessor recorded for state. ok is false if
// state is unknown or has no predecessor (the start state).
func (l *ledger[S, C]) Predecessor(state S) (pred S, ok bool) {
	r, found := l.records[state]
	if !found || !r.hasPred {
		return pred, false
	}

	return r.pred, true
}

// record stores (cost, pred) for state when state is unknown or cost is
// strictly lower than the stored cost, and reports whether it did.
// hasPred is false only for the start state.
func (l *ledger[S, C]) record(state S, cost C, pred S, hasPred bool) bool {
	if r, ok := l.records[state]; ok && !(cost < r.cost) {
		return false
	}
	l.records[state] = ledgerRecord[S, C]{cost: cost, pred: pred, hasPred: hasPred}

	return true
}

// All yields every recorded state with its best known cost, in no particular order.
func (l *ledger[S, C]) All() iter.Seq2[S, C] {
	return func(yield func(S, C) bool) {
		for s, r := range l.records {
			if !yield(s, r.cost) {
				return
			}
		}
	}
}

// Len returns the number of states with a ledger entry.
func (l *ledger[S, C]) Len() int { return len(l.records) }

// Path walks predecessor links from goal back to the start and returns the
// states in start-to-goal order. It returns nil if goal is unknown.
func (l *ledger[S, C]) Path(goal S) []S {
	if _, ok := l.records[goal]; !ok {
		return nil
	}
	path := []S{goal}
	// A predecessor chain visits each recorded state at most once.
	for cur := goal; len(path) <= len(l.records); {
		pred, ok := l.Predecessor(cur)
		if !ok {
			break
		}
		path = append(path, pred)
		cur = pred
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
