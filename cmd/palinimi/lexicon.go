// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/palinimi/palinimi/pkg/lexicon"
)

func newLexiconCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon [category]...",
		Short: "List the words of the lexical categories",
		Long: `List the words already in use, by lexical category.

Without arguments, print how many words each category holds. With one or
more categories, print their words in lexicographic order, one per line.
Categories are pu, ku-suli, ku-lili, su and reserved.

` + SubtitleStyle.Render("Examples:") + `
  palinimi lexicon
  palinimi lexicon pu
  palinimi lexicon ku-suli ku-lili --lexicon words.cue`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			names := make([]string, 0, len(lexicon.Categories()))
			for _, c := range lexicon.Categories() {
				names = append(names, c.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexicon(s, args)
		},
	}
}

func runLexicon(s *session, args []string) error {
	categories := make([]lexicon.Category, 0, len(args))
	for _, arg := range args {
		c, err := lexicon.ParseCategory(arg)
		if err != nil {
			return s.fail(err)
		}
		categories = append(categories, c)
	}

	lex, err := s.loadLexicon()
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		fmt.Fprintln(s.app.stdout, lexiconSummary(lex))
		return nil
	}

	var words []string
	for _, c := range categories {
		words = append(words, lex.Words(c)...)
	}
	slices.Sort(words)
	for _, w := range slices.Compact(words) {
		fmt.Fprintln(s.app.stdout, w)
	}
	return nil
}

// lexiconSummary renders the word count of every category as a table.
func lexiconSummary(lex *lexicon.Lexicon) string {
	rows := make([][]string, 0, len(lexicon.Categories()))
	for _, c := range lexicon.Categories() {
		rows = append(rows, []string{c.String(), strconv.Itoa(len(lex.Words(c)))})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 1 {
				return tableCellStyle.Align(lipgloss.Right)
			}
			return tableCellStyle
		}).
		Headers("category", "words").
		Rows(rows...).
		Render()
}
