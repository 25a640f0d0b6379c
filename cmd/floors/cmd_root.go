package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dhamidi/floors/floor"
	"github.com/spf13/cobra"
)

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floors <input-file>",
		Short: "Follow parentheses up and down a building",
		Long: `Read a file of '(' and ')' characters. Each '(' goes up one floor,
each ')' goes down one. Every other byte is ignored.

Prints the final floor (Part1) and the position of the character that
first enters the basement, floor -1 (Part2, or -1 if it never does).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{msg: fmt.Sprintf("expected 1 input file, got %d arguments", len(args))}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFloors(cmd.OutOrStdout(), args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	return cmd
}

func runFloors(out io.Writer, path string) error {
	start := time.Now()
	result, err := floor.ScanFile(path)
	if err != nil {
		return err
	}
	log.Infof("scanned %s in %s", path, time.Since(start))

	fmt.Fprintf(out, "Part1: %d\n", result.Floor)
	fmt.Fprintf(out, "Part2: %d\n", result.BasementOrSentinel())
	return nil
}
