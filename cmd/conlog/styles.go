package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipp01105/conlog/style"
)

func newStylesCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the style names usable in formats and %{NAME} placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range style.Names() {
				code := style.Code(name)
				if noColor {
					fmt.Fprintf(out, "%-10s %s\n", name, strconv.Quote(code))
					continue
				}
				fmt.Fprintf(out, "%s%-10s%s %s\n", code, name, style.Reset, strconv.Quote(code))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "print the names without applying them")
	return cmd
}
