package main

import (
	"fmt"

	"github.com/clarete/ruled/examples/json"
	"github.com/spf13/cobra"
)

func newJSONCmd(opts *options) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document and print it back compacted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v, err := json.ParseWithConfig(string(data), newConfig(cmd, opts, name))
			if err != nil {
				return fmt.Errorf("parse json: %w", err)
			}

			if verify {
				if err := json.Verify(data, v); err != nil {
					return fmt.Errorf("verify json: %w", err)
				}
				log.Info("jsonparser agrees with the grammar")
			}

			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the result against github.com/buger/jsonparser")
	return cmd
}
