package main

import (
	"fmt"

	"github.com/clarete/ruled/examples/num"
	"github.com/spf13/cobra"
)

func newNumCmd(opts *options) *cobra.Command {
	var sum bool

	cmd := &cobra.Command{
		Use:   "num [file]",
		Short: "Read binary, decimal and hexadecimal numbers, one per line of output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			numbers, err := num.ParseWithConfig(string(data), newConfig(cmd, opts, name))
			if err != nil {
				return fmt.Errorf("parse numbers: %w", err)
			}

			var total int64
			for _, n := range numbers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", n, n.Value)
				total += n.Value
			}
			if sum {
				fmt.Fprintf(cmd.OutOrStdout(), "sum\t%d\n", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sum, "sum", false, "print the sum of all the numbers at the end")
	return cmd
}
