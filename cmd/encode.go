// cmd/encode.go
package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ColonelBlimp/morsekit/internal/cw"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var bits bool

	c := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text as Morse code",
		Long: `Encode text as dots and dashes, or as a keyed pulse stream with --bits.
Reads standard input when no text is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				text = strings.TrimRight(string(data), "\r\n")
			}
			text = a.prepare(text)

			var out string
			if bits {
				symbols, missing := a.tree.EncodeSymbols(text)
				a.reportMissing(cmd, missing)
				a.debugf(cmd, "symbols: %q\n", cw.FormatDotsAndDashes(slices.Values(symbols)))
				out = cw.FormatBits(cw.Encode(slices.Values(symbols)))
			} else {
				var missing []rune
				out, missing = a.tree.EncodeText(text, a.settings.Placeholder())
				a.reportMissing(cmd, missing)
				out = strings.TrimRight(out, " ")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().BoolVarP(&bits, "bits", "b", false, "output a pulse stream instead of dots and dashes")
	return c
}
