// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/palinimi/palinimi/internal/config"
	"github.com/palinimi/palinimi/internal/issue"
)

// newConfigCommand creates the `palinimi config` command tree.
// Subcommands that read configuration use the configuration loaded for the session.
func newConfigCommand(s *session) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage palinimi configuration",
		Long: `Manage palinimi configuration.

Configuration is stored in:
  - Linux: $XDG_CONFIG_HOME/palinimi/config.cue (default ~/.config/palinimi/config.cue)
  - macOS: ~/Library/Application Support/palinimi/config.cue
  - Windows: %APPDATA%\palinimi\config.cue

Every setting can be overridden with a PALINIMI_ environment variable,
for example PALINIMI_GENERATE_MAX_SYLLABLES=3.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(s)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(s.app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(s)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(s.app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(s *session) error {
	w := s.app.stdout
	cfg := s.cfg

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, headerStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	cfgPath, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: s.configPath})
	if err != nil || cfgPath == "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	}
	fmt.Fprintln(w)

	g := cfg.Generate
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("generate"))
	fmt.Fprintf(w, "  syllables: %s\n", valueStyle.Render(g.Range().String()))
	fmt.Fprintf(w, "  exclude:\n")
	writeBool(w, "    pu", g.Exclude.Pu)
	writeBool(w, "    ku_suli", g.Exclude.KuSuli)
	writeBool(w, "    ku_lili", g.Exclude.KuLili)
	writeBool(w, "    su", g.Exclude.Su)
	writeBool(w, "    reserved", g.Exclude.Reserved)
	fmt.Fprintf(w, "  pattern: %s\n", valueStyle.Render(strconv.Quote(g.Pattern)))
	if g.Glob == "" {
		fmt.Fprintf(w, "  glob: %s\n", SubtitleStyle.Render("(none)"))
	} else {
		fmt.Fprintf(w, "  glob: %s\n", valueStyle.Render(strconv.Quote(g.Glob)))
	}
	if g.Lexicon == "" {
		fmt.Fprintf(w, "  lexicon: %s\n", SubtitleStyle.Render("(built-in)"))
	} else {
		fmt.Fprintf(w, "  lexicon: %s\n", valueStyle.Render(g.Lexicon))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(cfg.Output.Format.String()))
	writeBool(w, "  title_case", cfg.Output.TitleCase)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	writeBool(w, "  verbose", cfg.UI.Verbose)

	return nil
}

func writeBool(w io.Writer, key string, value bool) {
	fmt.Fprintf(w, "%s: %s\n", key, SuccessStyle.Render(strconv.FormatBool(value)))
}

func initConfig(w io.Writer) error {
	cfgPath, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return issue.WrapWithOperation(err, "create config file")
	}

	if !created {
		fmt.Fprintf(w, "Config file already exists at: %s\n", cfgPath)
		return nil
	}

	fmt.Fprintf(w, "%s Created default config file at: %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(s *session) error {
	w := s.app.stdout

	cfgPath, err := config.FilePath("")
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Fprintln(w, cfgPath)

	active, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: s.configPath})
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	switch {
	case active == "":
		fmt.Fprintln(w, SubtitleStyle.Render("(file does not exist, using defaults)"))
	case active != cfgPath:
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("active:"), active)
	}
	return nil
}
