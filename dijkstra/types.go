// Package dijkstra defines configuration options and sentinel errors for
// uniform-cost shortest paths over a *core.Graph.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty).
//	– Target:           ID of the destination vertex (ShortestPath only).
//	– ReturnPath:       if true, Dijkstra also returns the predecessor map.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond it are not settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrEmptyTarget     if ShortestPath is called without a target.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if Dijkstra's source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that ShortestPath was called without a target.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of Dijkstra and ShortestPath.
//
// MaxDistance      – must be ≥ 0. Default is math.MaxInt64 (no cap).
// InfEdgeThreshold – must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           string          // The ID of the source vertex
	Target           string          // The ID of the target vertex (ShortestPath)
	ReturnPath       bool            // Whether Dijkstra returns the predecessor map
	MaxDistance      int64           // Maximum distance to explore
	InfEdgeThreshold int64           // Weight threshold at or above which edges are non-traversable
	Ctx              context.Context // Cancellation for long runs
	Logger           *slog.Logger    // Debug logging of the underlying search
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Target sets the destination vertex ID used by ShortestPath.
func Target(str string) Option {
	return func(o *Options) {
		o.Target = str
	}
}

// WithReturnPath enables generation of the predecessor map in Dijkstra's result.
// If not set, the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not settled.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// In Go, panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// skipped entirely. Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithContext sets a context checked before every frontier pop.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the search's debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (validated later).
//   - Target:           "" (required by ShortestPath only).
//   - ReturnPath:       false.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - Ctx:              context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		Ctx:              context.Background(),
	}
}
