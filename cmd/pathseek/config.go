package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errBadConfig = errors.New("pathseek: invalid configuration")

// Heuristic and tie-break policy names accepted by --heuristic and --tiebreak.
const (
	heuristicAuto = "auto"
	heuristicZero = "zero"

	tieBreakFIFO    = "fifo"
	tieBreakLexical = "lexical"
)

// runConfig holds the settings shared by every scenario.
// Precedence: defaults, then the YAML file, then flags set on the command line.
type runConfig struct {
	Heuristic     string        `yaml:"heuristic"`
	TieBreak      string        `yaml:"tiebreak"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
	Verbose       bool          `yaml:"verbose"`
}

func defaultRunConfig() runConfig {
	return runConfig{Heuristic: heuristicAuto, TieBreak: tieBreakFIFO}
}

// loadRunConfig returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// overlay copies every flag the user set explicitly from flags into c.
func (c *runConfig) overlay(cmd *cobra.Command, flags runConfig) {
	fs := cmd.Flags()
	if fs.Changed("heuristic") {
		c.Heuristic = flags.Heuristic
	}
	if fs.Changed("tiebreak") {
		c.TieBreak = flags.TieBreak
	}
	if fs.Changed("max-expansions") {
		c.MaxExpansions = flags.MaxExpansions
	}
	if fs.Changed("timeout") {
		c.Timeout = flags.Timeout
	}
	if fs.Changed("verbose") {
		c.Verbose = flags.Verbose
	}
}

func (c runConfig) validate() error {
	switch c.Heuristic {
	case heuristicAuto, heuristicZero:
	default:
		return fmt.Errorf("%w: heuristic %q (want %s or %s)", errBadConfig, c.Heuristic, heuristicAuto, heuristicZero)
	}
	switch c.TieBreak {
	case tieBreakFIFO, tieBreakLexical:
	default:
		return fmt.Errorf("%w: tiebreak %q (want %s or %s)", errBadConfig, c.TieBreak, tieBreakFIFO, tieBreakLexical)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d is negative", errBadConfig, c.MaxExpansions)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", errBadConfig, c.Timeout)
	}

	return nil
}
