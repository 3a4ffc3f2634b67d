// cmd/root.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/ColonelBlimp/morsekit/internal/config"
	"github.com/ColonelBlimp/morsekit/internal/cw"
	"github.com/ColonelBlimp/morsekit/internal/recovery"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app is the state shared by every subcommand. It is filled in once by the
// root command's PersistentPreRunE and only read afterwards.
type app struct {
	settings *config.Settings
	tree     *cw.Tree
}

var rootCmd = newRootCmd()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		recovery.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "morsekit",
		Short: "Morse code translator",
		Long: `Translate text to Morse code and back, as dots and dashes or as
keyed pulse streams (1 = key down, 0 = key up, one digit per dit unit).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	// Global flags (override config file)
	root.PersistentFlags().StringP("tree", "t", "", "YAML translation tree definition (default built-in)")
	root.PersistentFlags().StringP("placeholder", "p", "?", "character written for untranslatable input")
	root.PersistentFlags().BoolP("debug", "D", false, "enable debug output")

	root.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newTreeCmd(a))
	return root
}

func initConfig() {
	if err := config.Init(); err != nil {
		recovery.Fatal(fmt.Errorf("config error: %w", err))
	}
}

// bindFlags binds the persistent flags to viper. Done per run so that
// bindings survive viper.Reset between executions.
func bindFlags(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"tree_file":           "tree",
		"unknown_placeholder": "placeholder",
		"debug":               "debug",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// load reads the settings and builds the translation tree.
func (a *app) load(cmd *cobra.Command) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}
	s, err := config.Get()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var tree *cw.Tree
	if s.TreeFile != "" {
		tree, err = cw.LoadTree(s.TreeFile)
	} else {
		tree, err = cw.DefaultTree()
	}
	if err != nil {
		return fmt.Errorf("load translation tree: %w", err)
	}

	a.settings = s
	a.tree = tree
	a.debugf(cmd, "tree: %d characters, max code length %d\n", tree.Len(), tree.MaxLength())
	return nil
}

// prepare applies the configured case folding to input text.
func (a *app) prepare(text string) string {
	if a.settings.Uppercase {
		return strings.ToUpper(text)
	}
	return text
}

func (a *app) debugf(cmd *cobra.Command, format string, args ...any) {
	if a.settings != nil && a.settings.Debug {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "debug: "+format, args...)
	}
}

func (a *app) reportMissing(cmd *cobra.Command, missing []rune) {
	if len(missing) > 0 {
		a.debugf(cmd, "not in tree: %q\n", string(missing))
	}
}
