// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palinimi/palinimi/internal/issue"
	"github.com/palinimi/palinimi/pkg/lexicon"
	"github.com/palinimi/palinimi/pkg/phonotactics"
	"github.com/palinimi/palinimi/pkg/types"
)

// syllableSeparator joins the syllables of a segmented word.
const syllableSeparator = "·"

// wordVerdict is the outcome of checking one word.
type wordVerdict struct {
	Word       string
	Valid      bool
	Syllables  []string
	Categories []lexicon.Category
}

func newCheckCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Check words against the phonotactics",
		Long: `Check whether each word is allowed by the phonotactics of Toki Pona.

Valid words are printed with a syllable segmentation and the lexical
categories they already belong to. The command exits with status 1 when
any word is invalid.

` + SubtitleStyle.Render("Examples:") + `
  palinimi check toki
  palinimi check kijetesantakalu nma`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(s, args)
		},
	}
}

// checkWord validates word and looks it up in lex.
func checkWord(lex *lexicon.Lexicon, word string) wordVerdict {
	syllables, ok := phonotactics.Segment(word)
	if !ok {
		return wordVerdict{Word: word}
	}
	return wordVerdict{
		Word:       word,
		Valid:      true,
		Syllables:  syllables,
		Categories: lex.Lookup(word),
	}
}

func runCheck(s *session, words []string) error {
	lex, err := s.loadLexicon()
	if err != nil {
		return err
	}

	width := 0
	for _, w := range words {
		width = max(width, len(w))
	}

	invalid := 0
	for _, w := range words {
		v := checkWord(lex, w)
		if !v.Valid {
			invalid++
		}
		writeVerdict(s.app.stdout, v, width)
	}

	if invalid == 0 {
		return nil
	}

	renderServiceError(s.app.stderr, newServiceError(
		fmt.Errorf("%d of %d words are invalid", invalid, len(words)), issue.InvalidWordId, ""), s.helpStyle())
	return &ExitError{Code: types.ExitFailure}
}

func writeVerdict(w io.Writer, v wordVerdict, width int) {
	word := v.Word + strings.Repeat(" ", width-len(v.Word))
	if !v.Valid {
		fmt.Fprintf(w, "%s %s  %s\n", ErrorStyle.Render("✗"), word, SubtitleStyle.Render("invalid"))
		return
	}

	line := fmt.Sprintf("%s %s  %s", SuccessStyle.Render("✓"), word,
		CmdStyle.Render(strings.Join(v.Syllables, syllableSeparator)))
	if len(v.Categories) > 0 {
		names := make([]string, len(v.Categories))
		for i, c := range v.Categories {
			names[i] = c.String()
		}
		line += "  " + SubtitleStyle.Render(strings.Join(names, ", "))
	}
	fmt.Fprintln(w, line)
}
