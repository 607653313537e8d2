package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"arith/internal/ast"
	"arith/internal/diag"
	"arith/internal/diagfmt"
	"arith/internal/observ"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] snapshot.mp",
	Short: "Render a tree saved with parse --format msgpack",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("format", "pretty", "output format (pretty|tree|canonical|infix|json|yaml|dump)")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := diagfmt.ParseFormat(current.format)
	if err != nil {
		return err
	}
	if format == diagfmt.FormatMsgpack {
		return fmt.Errorf("show renders snapshots; msgpack output is not supported here")
	}

	timer := observ.NewTimer()
	var tree *ast.Tree
	err = timer.Track("read", func() error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, openErr := os.Open(args[0])
			if openErr != nil {
				return openErr
			}
			defer f.Close()
			r = f
		}
		var decodeErr error
		tree, decodeErr = ast.DecodeMsgpack(r)
		return decodeErr
	})
	if err != nil {
		reportIOError(cmd, diag.IOSnapshotFailed, fmt.Sprintf("%s: %v", args[0], err))
		return errFailed
	}

	err = timer.Track("render", func() error {
		return diagfmt.FormatAST(cmd.OutOrStdout(), tree, format, diagfmt.OutputOpts{Color: current.color})
	})
	if err != nil {
		return err
	}
	printTimings(cmd, timer)
	return nil
}
