// Package main provides the fca binary: build concept lattices from context
// files and query them.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "fca"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(out, logOut io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
		format     string
		metricsOut string
		a          *app
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Formal concept analysis on object/attribute contexts",
		Long: `fca builds the concept lattice of a formal context read from a YAML or
TSV file and answers questions about it: the lattice itself, attribute
closures, marginal and conditional probabilities, and the cross table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// Flags take precedence over the file.
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if format != "" {
				cfg.Input.Format = format
			}
			if metricsOut != "" {
				cfg.Metrics.Textfile = metricsOut
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a, err = newApp(cfg, out, logOut)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.flushMetrics()
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&format, "format", "", "Input format (yaml, tsv); default from extension")
	cmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile")

	var pruneEmpty bool
	latticeCmd := &cobra.Command{
		Use:   "lattice FILE",
		Short: "Print every concept, generalizations first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLattice(args[0], pruneEmpty)
		},
	}
	latticeCmd.Flags().BoolVar(&pruneEmpty, "prune-empty", false, "Drop concepts with an empty extent")

	marginalCmd := &cobra.Command{
		Use:   "marginal FILE [ATTRIBUTE...]",
		Short: "Fraction of objects carrying every attribute",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMarginal(args[0], args[1:])
		},
	}

	var given string
	conditionalCmd := &cobra.Command{
		Use:   "conditional FILE --given A,B [ATTRIBUTE...]",
		Short: "Probability of the attributes given --given",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConditional(args[0], args[1:], splitList(given))
		},
	}
	conditionalCmd.Flags().StringVar(&given, "given", "", "Comma separated conditioning attributes")

	closureCmd := &cobra.Command{
		Use:   "closure FILE [ATTRIBUTE...]",
		Short: "Print the concept generated by the attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClosure(args[0], args[1:])
		},
	}

	var complement bool
	tableCmd := &cobra.Command{
		Use:   "table FILE",
		Short: "Print the cross table of the context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(args[0], complement)
		},
	}
	tableCmd.Flags().BoolVar(&complement, "complement", false, "Print the complemented table")

	intervalsCmd := &cobra.Command{
		Use:   "intervals FILE",
		Short: "Build the lattice of interval relations from id/lo/hi lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runIntervals(args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(out, "%s version %s\n", appName, Version)
			return err
		},
	}

	cmd.AddCommand(latticeCmd, marginalCmd, conditionalCmd, closureCmd, tableCmd, intervalsCmd, versionCmd)

	return cmd
}

// splitList splits a comma separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
