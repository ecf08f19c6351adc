package search

import (
	"context"
	"errors"
	"iter"
	"log/slog"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilSuccessors indicates that no successor function was supplied.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost indicates that the successor function produced a negative
	// (or NaN) step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative (or NaN) estimate.
	ErrNegativeHeuristic = errors.New("search: negative heuristic estimate")

	// ErrExpansionLimit indicates that MaxExpansions was reached before the search terminated.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrFrontierLimit indicates that the frontier grew beyond MaxFrontier live entries.
	ErrFrontierLimit = errors.New("search: frontier limit reached")

	// ErrCanceled indicates that the caller's context was canceled or timed out.
	ErrCanceled = errors.New("search: canceled")

	// ErrBadMaxExpansions indicates that MaxExpansions was set to zero or a negative value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be positive")

	// ErrBadMaxFrontier indicates that MaxFrontier was set to zero or a negative value.
	ErrBadMaxFrontier = errors.New("search: MaxFrontier must be positive")
)

// Number is the set of numeric kinds usable as path costs.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Edge is a single outgoing transition: the successor state and the
// non-negative cost of stepping into it.
type Edge[S comparable, C Number] struct {
	To   S
	Cost C
}

// Successors returns the outgoing edges of a state as a lazy, finite sequence
// of (successor, step cost) pairs. It must be pure: the same state always
// yields the same edges in the same order.
type Successors[S comparable, C Number] func(state S) iter.Seq2[S, C]

// GoalTest reports whether a state satisfies the search goal.
type GoalTest[S comparable] func(state S) bool

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must never be negative; it should never overestimate for optimal results.
type Heuristic[S comparable, C Number] func(state S) C

// ZeroHeuristic returns a heuristic that always estimates zero, which turns
// the search into uniform-cost search (Dijkstra).
func ZeroHeuristic[S comparable, C Number]() Heuristic[S, C] {
	return func(S) C {
		var zero C
		return zero
	}
}

// FromEdges adapts a slice-producing neighbor function into Successors.
func FromEdges[S comparable, C Number](fn func(state S) []Edge[S, C]) Successors[S, C] {
	return func(state S) iter.Seq2[S, C] {
		return func(yield func(S, C) bool) {
			for _, e := range fn(state) {
				if !yield(e.To, e.Cost) {
					return
				}
			}
		}
	}
}

// Status is the lifecycle state of a single search run.
type Status int

const (
	// Initialized means the search has been created but not stepped yet.
	Initialized Status = iota
	// Running means the frontier has been seeded and is being drained.
	Running
	// Succeeded means a goal state was popped and its path reconstructed.
	Succeeded
	// Exhausted means the frontier emptied without reaching a goal ("no path").
	Exhausted
	// Failed means the run was aborted by a contract violation, a resource
	// limit, a hook error or cancellation.
	Failed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == Succeeded || s == Exhausted || s == Failed
}

// Stats records diagnostic counters of a search run.
type Stats struct {
	Expanded  int // entries popped, found live and expanded (goal pop included)
	Stale     int // entries popped and discarded as stale
	Generated int // successor edges produced by the successor function
	Pushed    int // entries inserted into the frontier (seed included)
}

// Result is the outcome of a search. Path is nil and Found is false when no
// goal state is reachable; that case is not an error.
type Result[S comparable, C Number] struct {
	// Path lists the states from start to goal inclusive.
	Path []S
	// Cost is the summed step cost along Path.
	Cost C
	// Found reports whether a goal state was reached.
	Found bool
	// Status is the terminal status of the run.
	Status Status
	// Stats holds expansion counters.
	Stats Stats
}

// Options configures a search run.
//
// The zero-valued fields of DefaultOptions mean "no limit" / "not set".
type Options[S comparable, C Number] struct {
	// Ctx allows cooperative cancellation; checked once per pop.
	Ctx context.Context

	// Heuristic guides the search; nil means ZeroHeuristic.
	Heuristic Heuristic[S, C]

	// TieBreak, if non-nil, orders states whose priority and cost are equal.
	// Entries still tied fall back to insertion order.
	TieBreak func(a, b S) bool

	// MaxExpansions caps the number of live pops; 0 means no cap.
	MaxExpansions int

	// MaxFrontier caps the number of entries held by the frontier; 0 means no cap.
	MaxFrontier int

	// OnPop, if non-nil, is invoked for every live (non-stale) popped state
	// with its cost from start. Returning an error aborts the search.
	OnPop func(state S, cost C) error

	// OnExpand, if non-nil, is invoked for every improving successor before it
	// is pushed. Returning an error aborts the search.
	OnExpand func(from, to S, cost C) error

	// Logger receives debug-level lifecycle records.
	Logger *slog.Logger
}

// Option represents a functional option for configuring a search.
type Option[S comparable, C Number] func(*Options[S, C])

// DefaultOptions returns Options with:
//   - Background context
//   - Zero heuristic (uniform-cost search)
//   - Insertion-order tie-break
//   - No expansion or frontier caps
//   - No hooks
//   - A logger that discards everything
func DefaultOptions[S comparable, C Number]() Options[S, C] {
	return Options[S, C]{
		Ctx:       context.Background(),
		Heuristic: ZeroHeuristic[S, C](),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the context checked before every pop.
// Passing a nil context has no effect (Background is retained).
func WithContext[S comparable, C Number](ctx context.Context) Option[S, C] {
	return func(o *Options[S, C]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the heuristic. A nil heuristic keeps the zero heuristic.
func WithHeuristic[S comparable, C Number](h Heuristic[S, C]) Option[S, C] {
	return func(o *Options[S, C]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithTieBreak sets a strict ordering over states used when two entries have
// equal priority and equal cost.
func WithTieBreak[S comparable, C Number](less func(a, b S) bool) Option[S, C] {
	return func(o *Options[S, C]) {
		o.TieBreak = less
	}
}

// WithMaxExpansions caps the number of live pops. Panics if limit <= 0.
func WithMaxExpansions[S comparable, C Number](limit int) Option[S, C] {
	return func(o *Options[S, C]) {
		if limit <= 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = limit
	}
}

// WithMaxFrontier caps the number of frontier entries. Panics if limit <= 0.
func WithMaxFrontier[S comparable, C Number](limit int) Option[S, C] {
	return func(o *Options[S, C]) {
		if limit <= 0 {
			panic(ErrBadMaxFrontier.Error())
		}
		o.MaxFrontier = limit
	}
}

// WithOnPop installs fn as the pop hook.
func WithOnPop[S comparable, C Number](fn func(state S, cost C) error) Option[S, C] {
	return func(o *Options[S, C]) {
		o.OnPop = fn
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand[S comparable, C Number](fn func(from, to S, cost C) error) Option[S, C] {
	return func(o *Options[S, C]) {
		o.OnExpand = fn
	}
}

// WithLogger sets the structured logger. Passing nil has no effect.
func WithLogger[S comparable, C Number](logger *slog.Logger) Option[S, C] {
	return func(o *Options[S, C]) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// invalidCost reports whether c is negative or NaN.
func invalidCost[C Number](c C) bool {
	var zero C
	return c < zero || c != c
}
