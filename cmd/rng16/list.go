package main

import (
	"fmt"

	"github.com/soypat/rng16"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generator variants and their shift triples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range rng16.Variants() {
				sa, sb, sc := v.Shifts()
				mark := ""
				if v == rng16.Default {
					mark = " *"
				}
				_, err := fmt.Fprintf(out, "%s\t<<%-2d >>%-2d <<%-2d%s\n", v, sa, sb, sc, mark)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
