package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/config"
)

// settings merges flags over arith.toml over built-in defaults.
type settings struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	format         string
	jobs           int
	configPath     string
}

var current settings

func resolveSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()

	explicit, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Discover(explicit, ".")
	if err != nil {
		return settings{}, err
	}

	s := settings{
		maxDiagnostics: cfg.Diagnostics.Max,
		format:         cfg.Output.Format,
		jobs:           cfg.Batch.Jobs,
		configPath:     cfg.Path,
	}

	colorMode := cfg.Output.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return settings{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch colorMode {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stdout) && isTerminal(os.Stderr)
	default:
		return settings{}, fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorMode)
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	// --format и --jobs есть не у всех команд
	if f := flags.Lookup("format"); f != nil && f.Changed {
		s.format = f.Value.String()
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return settings{}, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	return s, nil
}
