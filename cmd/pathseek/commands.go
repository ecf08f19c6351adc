package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathseek/core"
	"github.com/katalvlaran/pathseek/gridgraph"
	"github.com/katalvlaran/pathseek/search"
)

// app carries state shared between the root command and its subcommands.
type app struct {
	cfgPath string
	flags   runConfig // raw flag values; only explicitly set ones are applied
	cfg     runConfig
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathseek",
		Short: "Run best-first path searches over built-in scenarios",
		Long: `pathseek runs A* or uniform-cost search over a 5×5 maze (grid)
or a 4-vertex weighted digraph (graph) and prints the path, its cost and
search statistics.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
	}

	def := defaultRunConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML file with run settings")
	pf.StringVar(&a.flags.Heuristic, "heuristic", def.Heuristic, "auto (scenario heuristic) or zero (uniform-cost search)")
	pf.StringVar(&a.flags.TieBreak, "tiebreak", def.TieBreak, "order among equal-priority entries: fifo or lexical")
	pf.IntVar(&a.flags.MaxExpansions, "max-expansions", def.MaxExpansions, "fail after this many expansions (0 = unlimited)")
	pf.DurationVar(&a.flags.Timeout, "timeout", def.Timeout, "cancel the search after this long (0 = none)")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", def.Verbose, "log search progress to stderr")

	root.AddCommand(a.gridCmd(), a.graphCmd())

	return root
}

// prepare resolves the run configuration and builds the logger.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := loadRunConfig(a.cfgPath)
	if err != nil {
		return err
	}
	cfg.overlay(cmd, a.flags)
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

// searchContext returns the command context bounded by the configured timeout.
func (a *app) searchContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

// referenceMaze is the 5×5 maze; 1 marks a wall.
var referenceMaze = [][]int{
	{0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0},
	{0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0},
	{0, 0, 0, 1, 0},
}

func (a *app) gridCmd() *cobra.Command {
	var (
		conn         int
		diagonalCost int
		from, to     string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search the 5×5 reference maze",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := gridgraph.DefaultGridOptions()
			switch conn {
			case 4:
			case 8:
				opts.Conn = gridgraph.Conn8
				opts.DiagonalCost = diagonalCost
			default:
				return fmt.Errorf("%w: conn %d (want 4 or 8)", errBadConfig, conn)
			}
			start, err := parseCell(from)
			if err != nil {
				return err
			}
			goal, err := parseCell(to)
			if err != nil {
				return err
			}
			gg, err := gridgraph.NewGridGraph(referenceMaze, opts)
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd)
			defer cancel()
			a.logger.Info("running grid scenario",
				slog.String("conn", opts.Conn.String()),
				slog.String("from", start.String()),
				slog.String("to", goal.String()))

			res, err := gg.ShortestPath(start, goal, searchOptions[gridgraph.Cell, int](ctx, a.cfg, a.logger, gridgraph.Cell.Less)...)
			if res.Found {
				fmt.Fprint(cmd.OutOrStdout(), gg.Render(res.Path))
			}
			report(cmd.OutOrStdout(), res)
			if err != nil {
				return fmt.Errorf("grid search: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&conn, "conn", 4, "connectivity: 4 or 8")
	cmd.Flags().IntVar(&diagonalCost, "diagonal-cost", 1, "cost of a diagonal move with --conn 8 (1 or 2)")
	cmd.Flags().StringVar(&from, "from", "0,0", "start cell as row,col")
	cmd.Flags().StringVar(&to, "to", "4,4", "goal cell as row,col")

	return cmd
}

// referenceEstimates is an admissible, consistent estimate of the remaining
// cost to D in the reference digraph.
var referenceEstimates = map[string]int64{"A": 3, "B": 2, "C": 1, "D": 0}

func referenceGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 5}, {"C", "D", 1},
	} {
		if _, err := g.AddEdge(e.from, e.to, e.w); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (a *app) graphCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search the 4-vertex reference digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := referenceGraph()
			if err != nil {
				return err
			}

			ctx, cancel := a.searchContext(cmd)
			defer cancel()
			a.logger.Info("running graph scenario", slog.String("from", from), slog.String("to", to))

			opts := make([]search.Option[string, int64], 0, 5)
			if to == "D" {
				// The estimates only hold for D.
				opts = append(opts, search.WithHeuristic[string, int64](func(v string) int64 { return referenceEstimates[v] }))
			}
			opts = append(opts, searchOptions[string, int64](ctx, a.cfg, a.logger, func(x, y string) bool { return x < y })...)

			res, err := search.Search[string, int64](from, g.Neighbors, func(v string) bool { return v == to }, opts...)
			report(cmd.OutOrStdout(), res)
			if err != nil {
				return fmt.Errorf("graph search: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "A", "start vertex")
	cmd.Flags().StringVar(&to, "to", "D", "goal vertex")

	return cmd
}

// searchOptions translates cfg into engine options. Scenario heuristics must
// be passed before these so that --heuristic zero overrides them.
func searchOptions[S comparable, C search.Number](ctx context.Context, cfg runConfig, logger *slog.Logger, less func(a, b S) bool) []search.Option[S, C] {
	opts := []search.Option[S, C]{
		search.WithContext[S, C](ctx),
		search.WithLogger[S, C](logger),
	}
	if cfg.Heuristic == heuristicZero {
		opts = append(opts, search.WithHeuristic(search.ZeroHeuristic[S, C]()))
	}
	if cfg.TieBreak == tieBreakLexical {
		opts = append(opts, search.WithTieBreak[S, C](less))
	}
	if cfg.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions[S, C](cfg.MaxExpansions))
	}

	return opts
}

func report[S comparable, C search.Number](w io.Writer, res search.Result[S, C]) {
	if res.Found {
		fmt.Fprintf(w, "path: %v\ncost: %v\n", res.Path, res.Cost)
	} else {
		fmt.Fprintf(w, "no path (%s)\n", res.Status)
	}
	fmt.Fprintf(w, "stats: expanded=%d stale=%d generated=%d pushed=%d\n",
		res.Stats.Expanded, res.Stats.Stale, res.Stats.Generated, res.Stats.Pushed)
}

// parseCell parses "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q (want row,col)", errBadConfig, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q: %w", errBadConfig, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: cell %q: %w", errBadConfig, s, err)
	}

	return gridgraph.Cell{Row: r, Col: c}, nil
}
