package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arith/internal/diagfmt"
	"arith/internal/driver"
	"arith/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [expr...]",
	Short: "Tokenize expressions",
	Long:  `Tokenize breaks each expression into integer and operator tokens`,
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml|dump)")
	tokenizeCmd.Flags().IntP("jobs", "j", 0, "max parallel workers for --file (0=auto)")
	addInputFlags(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	// формат из arith.toml относится к деревьям, здесь только флаг
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := diagfmt.ParseFormat(formatName)
	if err != nil {
		return err
	}

	timer := observ.NewTimer()
	inputs, err := collectInputs(cmd, args, timer)
	if err != nil {
		return err
	}

	results, err := driver.TokenizeBatch(cmd.Context(), inputs.texts(), current.maxDiagnostics, current.jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
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
			if label != "" && !current.quiet {
				if _, err := fmt.Fprintf(out, "%s: %s\n", label, res.Input); err != nil {
					return err
				}
			}
			return diagfmt.FormatTokens(out, res.Tokens, format, diagfmt.OutputOpts{Color: current.color})
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
