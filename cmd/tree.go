// cmd/tree.go
package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/ColonelBlimp/morsekit/internal/cw"
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "List the translation tree",
		Long:  `List every character in the translation tree with its code, dit branches first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			a.tree.Walk(func(r rune, path []cw.Symbol) bool {
				_, _ = fmt.Fprintf(w, "%c\t%s\n", r, cw.FormatDotsAndDashes(slices.Values(path)))
				return true
			})
			if err := w.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d characters, longest code %d symbols\n",
				a.tree.Len(), a.tree.MaxLength())
			return err
		},
	}
}
