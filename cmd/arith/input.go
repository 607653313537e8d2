package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"arith/internal/diag"
	"arith/internal/diagfmt"
	"arith/internal/driver"
	"arith/internal/observ"
)

// demoInput is used when neither an expression nor --file is given.
const demoInput = "1*234+3/4-7"

// inputSet is what a command works on: either command-line expressions or
// the lines of a batch file.
type inputSet struct {
	lines []driver.Line
	// fromFile switches labels from "#N" to "line N".
	fromFile bool
}

func (s inputSet) texts() []string {
	return lo.Map(s.lines, func(l driver.Line, _ int) string { return l.Text })
}

func (s inputSet) label(i int) string {
	if len(s.lines) == 1 && !s.fromFile {
		return ""
	}
	if s.fromFile {
		return fmt.Sprintf("line %d", s.lines[i].No)
	}
	return fmt.Sprintf("#%d", s.lines[i].No)
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "read one expression per line from a file (- for stdin)")
}

func collectInputs(cmd *cobra.Command, args []string, timer *observ.Timer) (inputSet, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return inputSet{}, fmt.Errorf("failed to get file flag: %w", err)
	}
	if file != "" && len(args) > 0 {
		return inputSet{}, fmt.Errorf("expressions and --file are mutually exclusive")
	}

	if file == "" {
		if len(args) == 0 {
			args = []string{demoInput}
		}
		lines := lo.Map(args, func(a string, i int) driver.Line {
			return driver.Line{No: i + 1, Text: a}
		})
		return inputSet{lines: lines}, nil
	}

	var lines []driver.Line
	err = timer.Track("read", func() error {
		var r io.Reader = cmd.InOrStdin()
		if file != "-" {
			f, openErr := os.Open(file)
			if openErr != nil {
				return openErr
			}
			defer f.Close()
			r = f
		}
		var readErr error
		lines, readErr = driver.ReadLines(r)
		return readErr
	})
	if err != nil {
		reportIOError(cmd, diag.IOReadFailed, fmt.Sprintf("failed to read %s: %v", file, err))
		return inputSet{}, errFailed
	}
	return inputSet{lines: lines, fromFile: true}, nil
}

func reportIOError(cmd *cobra.Command, code diag.Code, msg string) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: code, Message: msg, Token: -1})
	_ = diagfmt.FormatShort(cmd.ErrOrStderr(), bag, "")
}

func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if !current.timings {
		return
	}
	_ = timer.Fprint(cmd.ErrOrStderr())
}
