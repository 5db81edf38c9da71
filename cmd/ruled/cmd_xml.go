package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/clarete/ruled/examples/xml"
	"github.com/spf13/cobra"
)

func newXMLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "xml [file]",
		Short: "Parse XML elements and print their tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			elements, err := xml.ParseWithConfig(string(data), newConfig(cmd, opts, name))
			if err != nil {
				return fmt.Errorf("parse xml: %w", err)
			}
			for _, e := range elements {
				printElement(cmd.OutOrStdout(), e, 0)
			}
			return nil
		},
	}
}

func printElement(w io.Writer, e xml.Element, depth int) {
	fmt.Fprintf(w, "%s%s", strings.Repeat("  ", depth), e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(w, " %s=%s", a.Name, a.Value)
	}
	fmt.Fprintln(w)
	for _, inner := range e.Inner {
		printElement(w, inner, depth+1)
	}
}
