// Command pathseek runs best-first searches over two built-in scenarios:
// a 5×5 maze (grid) and a small weighted digraph (graph).
//
// Usage:
//
//	pathseek grid [--conn 4|8] [--from r,c] [--to r,c]
//	pathseek graph [--from A] [--to D]
//
// Shared flags (--heuristic, --tiebreak, --max-expansions, --timeout,
// --verbose) may also be set in a YAML file passed with --config; flags that
// are set explicitly win over the file.
package main

import (
	"os"
)

func main() {
	// Cobra prints the error itself.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
