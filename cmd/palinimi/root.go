// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/palinimi/palinimi/pkg/palinimi"
	"github.com/palinimi/palinimi/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// negativeCountFlag matches the error pflag reports when a negative
	// syllable count is read as a cluster of digit shorthands.
	negativeCountFlag = regexp.MustCompile(`^unknown shorthand flag: '\d' in -(\d+)$`)
)

// newRootCommand creates the root command. Run without a subcommand it
// generates words; see newGenerateFlags for the flags it accepts.
func newRootCommand(app *App) *cobra.Command {
	s := &session{app: app}
	gen := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "palinimi [min] [max]",
		Short: "Generate every word allowed by Toki Pona phonotactics",
		Long: TitleStyle.Render("palinimi") + SubtitleStyle.Render(" - pali e nimi sin") + `

palinimi generates, in lexicographic order, every word permitted by the
phonotactics of Toki Pona with a syllable count in [min, max]. One count
generates words of exactly that length; without counts the range comes
from the configuration (1..2 by default).

Words already in use can be dropped by lexical category, and the results
narrowed with a regular expression anchored at the start of the word or
with a glob matched against the whole word.

` + SubtitleStyle.Render("Exclusion flags:") + `
  -p, --pu        (--exclude-nimi-pu)         the 120 words of the official book
  -k, --ku-suli   (--exclude-nimi-ku-suli)    common new words of the dictionary
  -l, --ku-lili   (--exclude-nimi-ku-lili)    the other new words of the dictionary
  -s, --su        (--exclude-nimi-su)         words of the story book series
  -u, --reserved  (--exclude-reserved-words)  words reserved for future use

` + SubtitleStyle.Render("Examples:") + `
  palinimi 1                   List the 92 one-syllable words
  palinimi 2 -r to             Two-syllable words starting with "to"
  palinimi 2 3 -g '*la' -t     Capitalized words ending in "la"
  palinimi 1 2 -pkls --count   Count the unused words up to two syllables
  palinimi check toki nma      Check words against the phonotactics
  palinimi lexicon pu          List the words of the official book
  palinimi config init         Create a default configuration file

Arguments starting with "-" are read as flags; put them after "--" to
pass them as counts.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(app.stderr, s.verbose)
			return s.loadConfig(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, s, gen, args)
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if cmd.HasParent() {
			return err
		}
		if m := negativeCountFlag.FindStringSubmatch(err.Error()); m != nil {
			return s.fail(fmt.Errorf("syllable count -%s is negative: %w", m[1], palinimi.ErrInvalidRange))
		}
		return err
	})

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/palinimi/config.cue)")
	rootCmd.PersistentFlags().StringVar(&s.lexiconPath, "lexicon", "", "CUE lexicon file replacing the built-in word lists")

	gen.register(rootCmd)

	rootCmd.AddCommand(newCheckCommand(s))
	rootCmd.AddCommand(newSyllablesCommand(s))
	rootCmd.AddCommand(newLexiconCommand(s))
	rootCmd.AddCommand(newConfigCommand(s))
	rootCmd.AddCommand(newCompletionCommand())

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes the CLI with os.Args and returns the process exit code.
func Run() int {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return int(types.ExitFailure)
	}

	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err = fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	)
	return int(exitCodeFor(err))
}

// Execute runs the CLI and exits the process with the resulting code.
// This is called by main.main().
func Execute() {
	os.Exit(Run())
}

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		return types.ExitFailure
	}
	if verr := exitErr.Code.Validate(); verr != nil {
		slog.Warn("replacing out-of-range exit code", "error", verr)
		return types.ExitFailure
	}
	// A failed command never exits with status 0.
	if exitErr.Code.IsSuccess() {
		return types.ExitFailure
	}
	return exitErr.Code
}

// handleError prints command errors through fang, except for silent exit
// codes whose outcome the command already reported.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
