// cmd/decode.go
package cmd

import (
	"bufio"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ColonelBlimp/morsekit/internal/cw"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var bits bool

	c := &cobra.Command{
		Use:   "decode [code...]",
		Short: "Decode Morse code to text",
		Long: `Decode dots and dashes, or a keyed pulse stream with --bits, to text.
Arguments are joined with single spaces, so each argument may be one
character's code. Reads standard input when no code is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits {
				return a.decodeBits(cmd, args)
			}
			if len(args) > 0 {
				return a.decodeLine(cmd, strings.Join(args, " "))
			}
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := a.decodeLine(cmd, scanner.Text()); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&bits, "bits", "b", false, "input is a pulse stream of 1s and 0s")
	return c
}

func (a *app) decodeLine(cmd *cobra.Command, line string) error {
	symbols := cw.ParseDotsAndDashes(line)
	text := a.tree.DecodeSymbols(slices.Values(symbols), a.settings.Placeholder())
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func (a *app) decodeBits(cmd *cobra.Command, args []string) error {
	var (
		input   iter.Seq[bool]
		readErr func() error
	)
	if len(args) > 0 {
		seq, err := cw.ParseBits(strings.Join(args, ""))
		if err != nil {
			return err
		}
		input = seq
		readErr = func() error { return nil }
	} else {
		br := cw.NewBitReader(cmd.InOrStdin())
		input = br.All()
		readErr = br.Err
	}

	symbols := cw.Decode(input)
	if a.settings.Debug {
		collected := slices.Collect(symbols)
		a.debugf(cmd, "symbols: %q\n", cw.FormatDotsAndDashes(slices.Values(collected)))
		symbols = slices.Values(collected)
	}

	text := a.tree.DecodeSymbols(symbols, a.settings.Placeholder())
	if err := readErr(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
