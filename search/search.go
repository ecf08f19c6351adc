package search

import (
	"fmt"
	"log/slog"
)

// Searcher drives a single search run one frontier pop at a time.
//
// Lifecycle: Initialized → Running → {Succeeded, Exhausted, Failed}.
// Terminal states are final: further calls to Step return the same status
// and error without touching the frontier or the ledger.
//
// A Searcher owns its frontier and ledger and is not safe for concurrent use.
type Searcher[S comparable, C Number] struct {
	start      S
	successors Successors[S, C]
	goal       GoalTest[S]
	opts       Options[S, C]
	log        *slog.Logger

	frontier *frontier[S, C]
	ledger   *ledger[S, C]

	status Status
	result Result[S, C]
	err    error
}

// NewSearcher validates its inputs and returns a Searcher in the Initialized state.
//
// Returns ErrNilSuccessors or ErrNilGoal for missing capabilities.
func NewSearcher[S comparable, C Number](
	start S,
	successors Successors[S, C],
	goal GoalTest[S],
	opts ...Option[S, C],
) (*Searcher[S, C], error) {
	if successors == nil {
		return nil, ErrNilSuccessors
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	cfg := DefaultOptions[S, C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Searcher[S, C]{
		start:      start,
		successors: successors,
		goal:       goal,
		opts:       cfg,
		log:        cfg.Logger.With(slog.Any("start", start)),
		frontier:   newFrontier[S, C](cfg.TieBreak),
		ledger:     newLedger[S, C](),
		status:     Initialized,
	}, nil
}

// Status returns the current lifecycle state.
func (s *Searcher[S, C]) Status() Status { return s.status }

// Err returns the error that moved the run to Failed, or nil.
func (s *Searcher[S, C]) Err() error { return s.err }

// Result returns the current result. Path is only set once Succeeded.
func (s *Searcher[S, C]) Result() Result[S, C] {
	r := s.result
	r.Status = s.status
	if r.Path != nil {
		r.Path = append([]S(nil), r.Path...)
	}

	return r
}

// Ledger returns a read-only view of the cost ledger. The view stays live:
// it reflects later Steps.
func (s *Searcher[S, C]) Ledger() LedgerView[S, C] { return s.ledger }

// FrontierLen returns the number of entries currently queued, stale ones included.
func (s *Searcher[S, C]) FrontierLen() int { return s.frontier.Len() }

// Step performs one transition of the state machine:
//
//   - Initialized: seed the ledger and the frontier with the start state.
//   - Running: pop one entry; discard it if stale, finish if it is a goal,
//     otherwise expand its successors.
//
// The returned error is non-nil only when the run moved to Failed.
func (s *Searcher[S, C]) Step() (Status, error) {
	switch s.status {
	case Initialized:
		s.seed()
	case Running:
		s.advance()
	}

	return s.status, s.err
}

// seed records the start state at cost zero and pushes it.
func (s *Searcher[S, C]) seed() {
	var (
		zero C
		none S
	)
	h := s.opts.Heuristic(s.start)
	if invalidCost(h) {
		s.fail(fmt.Errorf("%w: h(%v)=%v", ErrNegativeHeuristic, s.start, h))
		return
	}
	s.ledger.record(s.start, zero, none, false)
	s.push(entry[S, C]{priority: h, cost: zero, state: s.start})
	s.status = Running
	s.log.Debug("search started", slog.Any("h", h))
}

// advance pops and processes a single frontier entry.
func (s *Searcher[S, C]) advance() {
	if err := s.opts.Ctx.Err(); err != nil {
		s.fail(fmt.Errorf("%w: %w", ErrCanceled, err))
		return
	}

	e, ok := s.frontier.Pop()
	if !ok {
		s.status = Exhausted
		s.log.Debug("search exhausted",
			slog.Int("expanded", s.result.Stats.Expanded),
			slog.Int("ledger", s.ledger.Len()))
		return
	}

	// Skip entries superseded by a cheaper path recorded after the push.
	if best, _ := s.ledger.Best(e.state); best < e.cost {
		s.result.Stats.Stale++
		return
	}

	if limit := s.opts.MaxExpansions; limit > 0 && s.result.Stats.Expanded >= limit {
		s.fail(fmt.Errorf("%w: %d expansions", ErrExpansionLimit, limit))
		return
	}
	s.result.Stats.Expanded++

	if s.opts.OnPop != nil {
		if err := s.opts.OnPop(e.state, e.cost); err != nil {
			s.fail(fmt.Errorf("search: pop hook on %v: %w", e.state, err))
			return
		}
	}

	if s.goal(e.state) {
		s.result.Found = true
		s.result.Cost = e.cost
		s.result.Path = s.ledger.Path(e.state)
		s.status = Succeeded
		s.log.Debug("search succeeded",
			slog.Any("goal", e.state),
			slog.Any("cost", e.cost),
			slog.Int("expanded", s.result.Stats.Expanded))
		return
	}

	s.expand(e)
}

// expand relaxes every outgoing edge of e.state.
func (s *Searcher[S, C]) expand(e entry[S, C]) {
	for next, step := range s.successors(e.state) {
		s.result.Stats.Generated++
		if invalidCost(step) {
			s.fail(fmt.Errorf("%w: edge %v→%v cost=%v", ErrNegativeCost, e.state, next, step))
			return
		}

		tentative := e.cost + step
		if !s.ledger.record(next, tentative, e.state, true) {
			continue
		}

		h := s.opts.Heuristic(next)
		if invalidCost(h) {
			s.fail(fmt.Errorf("%w: h(%v)=%v", ErrNegativeHeuristic, next, h))
			return
		}

		if s.opts.OnExpand != nil {
			if err := s.opts.OnExpand(e.state, next, tentative); err != nil {
				s.fail(fmt.Errorf("search: expand hook on %v→%v: %w", e.state, next, err))
				return
			}
		}

		s.push(entry[S, C]{
			priority: tentative + h,
			cost:     tentative,
			state:    next,
			pred:     e.state,
			hasPred:  true,
		})
		if limit := s.opts.MaxFrontier; limit > 0 && s.frontier.Len() > limit {
			s.fail(fmt.Errorf("%w: %d entries", ErrFrontierLimit, limit))
			return
		}
	}
}

func (s *Searcher[S, C]) push(e entry[S, C]) {
	s.frontier.Push(e)
	s.result.Stats.Pushed++
}

// fail moves the run to Failed with err.
func (s *Searcher[S, C]) fail(err error) {
	s.status = Failed
	s.err = err
	s.log.Debug("search failed", slog.String("error", err.Error()))
}

// Search runs a best-first search from start until a state satisfying goal is
// popped or the frontier empties.
//
// Returns:
//
//   - Result with Found=true, Path from start to goal and its Cost on success.
//   - Result with Found=false and a nil error when no goal is reachable.
//   - A non-nil error for nil capabilities, contract violations (negative step
//     cost or heuristic), resource limits, hook errors and cancellation. The
//     Result then carries the counters gathered so far and Status=Failed.
//
// Options:
//
//   - WithHeuristic(h): A* guidance; default is uniform-cost search.
//   - WithTieBreak(less): deterministic order among equal-priority states.
//   - WithMaxExpansions(n), WithMaxFrontier(n): resource caps.
//   - WithContext(ctx): cooperative cancellation, checked before each pop.
//   - WithOnPop(fn), WithOnExpand(fn): observation hooks.
//   - WithLogger(l): debug logging.
func Search[S comparable, C Number](
	start S,
	successors Successors[S, C],
	goal GoalTest[S],
	opts ...Option[S, C],
) (Result[S, C], error) {
	s, err := NewSearcher(start, successors, goal, opts...)
	if err != nil {
		return Result[S, C]{}, err
	}
	for !s.status.Terminal() {
		if _, err = s.Step(); err != nil {
			return s.Result(), err
		}
	}

	return s.Result(), nil
}
