// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/palinimi/palinimi/pkg/phonotactics"
)

// defaultStatsUpTo is the longest word length counted by `syllables --stats`.
const defaultStatsUpTo = 3

func newSyllablesCommand(s *session) *cobra.Command {
	var (
		stats bool
		upTo  int
	)

	cmd := &cobra.Command{
		Use:   "syllables",
		Short: "List the syllables of Toki Pona",
		Long: `List the 92 syllables of Toki Pona in lexicographic order, one per line.

With --stats, print instead how many words exist for each syllable count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stats {
				return runSyllableStats(s, upTo)
			}
			for _, syl := range phonotactics.SyllableTable() {
				fmt.Fprintln(s.app.stdout, syl)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print word counts per syllable count")
	cmd.Flags().IntVar(&upTo, "up-to", defaultStatsUpTo, "longest syllable count included in --stats")

	return cmd
}

func runSyllableStats(s *session, upTo int) error {
	if upTo < 1 {
		return s.fail(&phonotactics.InvalidSyllableCountError{Value: upTo})
	}

	rows := make([][]string, 0, upTo)
	for n := 1; n <= upTo; n++ {
		count, err := phonotactics.CountWords(n)
		if err != nil {
			return s.fail(err)
		}
		rows = append(rows, []string{strconv.Itoa(n), strconv.Itoa(count)})
	}

	t := table.New().
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
		Headers("syllables", "words").
		Rows(rows...)

	fmt.Fprintln(s.app.stdout, t.Render())
	return nil
}
