package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"arith/internal/diagfmt"
	"arith/internal/driver"
	"arith/internal/observ"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [expr...]",
	Short: "Parse expressions into right-associative trees",
	Long: `Parse tokenizes and parses each expression. Without arguments or --file
the demo expression 1*234+3/4-7 is parsed.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|tree|canonical|infix|json|yaml|msgpack|dump)")
	parseCmd.Flags().IntP("jobs", "j", 0, "max parallel workers for --file (0=auto)")
	parseCmd.Flags().Bool("trace", false, "dump parser input and result to stderr")
	parseCmd.Flags().Bool("tokens", false, "print the token list before the tree")
	addInputFlags(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := diagfmt.ParseFormat(current.format)
	if err != nil {
		return err
	}
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	showTokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}

	timer := observ.NewTimer()
	inputs, err := collectInputs(cmd, args, timer)
	if err != nil {
		return err
	}
	if format == diagfmt.FormatMsgpack && len(inputs.lines) != 1 {
		return fmt.Errorf("msgpack output takes exactly one expression, got %d", len(inputs.lines))
	}

	var results []*driver.ParseResult
	if trace {
		// трасса пишется последовательно, иначе вывод перемешается
		results = make([]*driver.ParseResult, len(inputs.lines))
		for i, text := range inputs.texts() {
			results[i] = driver.ParseWith(text, driver.ParseOptions{
				MaxDiagnostics: current.maxDiagnostics,
				Trace:          cmd.ErrOrStderr(),
			})
		}
	} else {
		results, err = driver.ParseBatch(cmd.Context(), inputs.texts(), current.maxDiagnostics, current.jobs)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	opts := diagfmt.OutputOpts{Color: current.color}
	failed := false
	for i, res := range results {
		timer.Merge(res.Timer)
		label := inputs.label(i)
		if res.Failed() {
			failed = true
			if err := diagfmt.Pretty(errOut, res.Input, res.Bag, diagfmt.PrettyOpts{Color: current.color, Label: label}); err != nil {
				return err
			}
			continue
		}
		err := timer.Track("render", func() error {
			return renderParse(out, res, label, format, showTokens, opts)
		})
		if err != nil {
			return err
		}
	}
	printTimings(cmd, timer)
	if failed {
		return errFailed
	}
	return nil
}

func renderParse(out io.Writer, res *driver.ParseResult, label string, format diagfmt.Format, showTokens bool, opts diagfmt.OutputOpts) error {
	if format == diagfmt.FormatMsgpack {
		return diagfmt.FormatAST(out, res.Tree, format, opts)
	}
	if label != "" && !current.quiet {
		if _, err := fmt.Fprintf(out, "%s: %s\n", label, res.Input); err != nil {
			return err
		}
	}
	if showTokens {
		if err := diagfmt.FormatTokensPretty(out, res.Tokens); err != nil {
			return err
		}
	}
	return diagfmt.FormatAST(out, res.Tree, format, opts)
}
