// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/palinimi/palinimi/internal/config"
	"github.com/palinimi/palinimi/internal/output"
	"github.com/palinimi/palinimi/pkg/palinimi"
)

// generateFlagAliases maps the long alias spellings to the canonical flag names.
var generateFlagAliases = map[string]string{
	"exclude-nimi-pu":        "pu",
	"exclude-nimi-ku-suli":   "ku-suli",
	"exclude-nimi-ku-lili":   "ku-lili",
	"exclude-nimi-su":        "su",
	"exclude-reserved-words": "reserved",
}

// generateFlags holds the flag values of the root (generation) command.
type generateFlags struct {
	excludePu       bool
	excludeKuSuli   bool
	excludeKuLili   bool
	excludeSu       bool
	excludeReserved bool
	regex           string
	glob            string
	format          string
	title           bool
	count           bool
}

// register adds the generation flags to cmd's local flag set.
func (f *generateFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeGenerateFlag)

	flags.BoolVarP(&f.excludePu, "pu", "p", false, "exclude the nimi pu")
	flags.BoolVarP(&f.excludeKuSuli, "ku-suli", "k", false, "exclude the nimi ku suli")
	flags.BoolVarP(&f.excludeKuLili, "ku-lili", "l", false, "exclude the nimi ku lili")
	flags.BoolVarP(&f.excludeSu, "su", "s", false, "exclude the nimi su")
	flags.BoolVarP(&f.excludeReserved, "reserved", "u", false, "exclude the reserved words")

	flags.StringVarP(&f.regex, "regex", "r", palinimi.MatchAll, "regular expression the words must match at their start")
	flags.StringVarP(&f.glob, "glob", "g", "", "glob the whole word must match")

	flags.StringVarP(&f.format, "format", "f", string(output.FormatPlain), "output format (plain, json, toml, yaml)")
	flags.BoolVarP(&f.title, "title", "t", false, "capitalize each word")
	flags.BoolVarP(&f.count, "count", "c", false, "print only the number of matching words")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(output.Formats()))
		for _, format := range output.Formats() {
			names = append(names, format.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// normalizeGenerateFlag resolves the long alias spellings.
func normalizeGenerateFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if canonical, ok := generateFlagAliases[name]; ok {
		name = canonical
	}
	return pflag.NormalizedName(name)
}

// options merges the flags, the positional counts and the configured
// defaults. Flags set on the command line take precedence over the config.
func (f *generateFlags) options(flags *pflag.FlagSet, cfg config.GenerateConfig, args []string) (palinimi.Options, error) {
	minSyllables, maxSyllables, err := parseSyllableRange(args, cfg)
	if err != nil {
		return palinimi.Options{}, err
	}

	opts := palinimi.DefaultOptions(minSyllables, maxSyllables)
	opts.ExcludePu = pick(flags, "pu", f.excludePu, cfg.Exclude.Pu)
	opts.ExcludeKuSuli = pick(flags, "ku-suli", f.excludeKuSuli, cfg.Exclude.KuSuli)
	opts.ExcludeKuLili = pick(flags, "ku-lili", f.excludeKuLili, cfg.Exclude.KuLili)
	opts.ExcludeSu = pick(flags, "su", f.excludeSu, cfg.Exclude.Su)
	opts.ExcludeReserved = pick(flags, "reserved", f.excludeReserved, cfg.Exclude.Reserved)
	opts.Pattern = pick(flags, "regex", f.regex, cfg.Pattern)
	opts.Glob = pick(flags, "glob", f.glob, cfg.Glob)
	return opts, nil
}

// outputOptions merges the output flags with the configured defaults.
func (f *generateFlags) outputOptions(flags *pflag.FlagSet, cfg config.OutputConfig) (output.Options, error) {
	formatName := pick(flags, "format", f.format, string(cfg.Format))
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return output.Options{}, err
	}

	return output.Options{
		Format:    format,
		TitleCase: pick(flags, "title", f.title, cfg.TitleCase),
		CountOnly: f.count,
	}, nil
}

// pick returns the flag value when the flag was set, the configured value otherwise.
func pick[T any](flags *pflag.FlagSet, name string, flagValue, configValue T) T {
	if flags.Changed(name) {
		return flagValue
	}
	return configValue
}

// parseSyllableRange reads the positional counts. No count uses the
// configured range; one count n means n..n.
func parseSyllableRange(args []string, cfg config.GenerateConfig) (int, int, error) {
	counts := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("syllable count %q is not a number: %w", arg, palinimi.ErrInvalidRange)
		}
		counts[i] = n
	}

	switch len(counts) {
	case 0:
		return cfg.MinSyllables, cfg.MaxSyllables, nil
	case 1:
		return counts[0], counts[0], nil
	default:
		return counts[0], counts[1], nil
	}
}

// queryFor records opts in the form written to structured output.
func queryFor(opts palinimi.Options) output.Query {
	q := output.Query{
		MinSyllables: opts.MinSyllables,
		MaxSyllables: opts.MaxSyllables,
		Pattern:      opts.Pattern,
		Glob:         opts.Glob,
	}
	for _, c := range opts.ExcludedCategories() {
		q.Exclude = append(q.Exclude, c.String())
	}
	return q
}

func runGenerate(cmd *cobra.Command, s *session, f *generateFlags, args []string) error {
	opts, err := f.options(cmd.Flags(), s.cfg.Generate, args)
	if err != nil {
		return s.fail(err)
	}

	if opts.Lexicon, err = s.loadLexicon(); err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return s.fail(err)
	}

	outOpts, err := f.outputOptions(cmd.Flags(), s.cfg.Output)
	if err != nil {
		return err
	}

	slog.Debug("generating words",
		"min", opts.MinSyllables,
		"max", opts.MaxSyllables,
		"exclude", queryFor(opts).Exclude,
		"pattern", opts.Pattern,
		"glob", opts.Glob)

	ctx := cmd.Context()
	var result output.Result
	if outOpts.CountOnly {
		seq, err := palinimi.Stream(ctx, opts)
		if err != nil {
			return s.fail(err)
		}
		n := 0
		for range seq {
			n++
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		result = output.Result{Query: queryFor(opts), Count: n}
	} else {
		words, err := palinimi.Generate(ctx, opts)
		if err != nil {
			return s.fail(err)
		}
		result = output.NewResult(queryFor(opts), words)
	}

	return output.Write(s.app.stdout, result, outOpts)
}
