// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/palinimi/palinimi/internal/issue"
	"github.com/palinimi/palinimi/pkg/cueutil"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "palinimi"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. PALINIMI_OUTPUT_FORMAT.
	EnvPrefix = "PALINIMI"
	// MaxFileSize caps the size of a config file (64KB).
	MaxFileSize int64 = 64 << 10
)

//go:embed config_schema.cue
var configSchema []byte

// ConfigDir returns the palinimi configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the path of the config file inside dir, or inside
// ConfigDir() when dir is empty.
func FilePath(dir string) (string, error) {
	cfgDir, err := configDirWithOverride(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// ResolvePath returns the file Load would read for opts, or "" when no file
// exists and the built-in defaults apply.
func ResolvePath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}

	cuePath, err := FilePath(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	if fileExists(cuePath) {
		return cuePath, nil
	}

	localCuePath := ConfigFileName + "." + ConfigFileExt
	if fileExists(localCuePath) {
		return localCuePath, nil
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	// If a custom config file path is set via --config, use it exclusively.
	if opts.ConfigFilePath != "" && !fileExists(opts.ConfigFilePath) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Check that the file exists and is readable").
			WithSuggestion("Use 'palinimi config show' to see default configuration").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	resolvedPath, err := ResolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	// If no config file is found, the defaults apply (no error).
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestions(
					"Check that the file contains valid CUE syntax",
					"Verify the configuration values match the expected schema",
					"See 'palinimi config --help' for configuration options",
				).
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", issue.WrapWithContext(err, "decode configuration", resolvedPath)
	}

	// Cross-field and environment-provided values are checked here because
	// the schema only sees the file.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Ensure generate.min_syllables is at least 1 and not above generate.max_syllables").
			WithSuggestion("Check " + EnvPrefix + "_* environment variables").
			WithIssue(issue.ConfigLoadFailedId).
			Wrap(errs[0]).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// newViper returns a viper instance holding the defaults and bound to the
// PALINIMI_ environment.
func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("generate.min_syllables", defaults.Generate.MinSyllables)
	v.SetDefault("generate.max_syllables", defaults.Generate.MaxSyllables)
	v.SetDefault("generate.exclude.pu", defaults.Generate.Exclude.Pu)
	v.SetDefault("generate.exclude.ku_suli", defaults.Generate.Exclude.KuSuli)
	v.SetDefault("generate.exclude.ku_lili", defaults.Generate.Exclude.KuLili)
	v.SetDefault("generate.exclude.su", defaults.Generate.Exclude.Su)
	v.SetDefault("generate.exclude.reserved", defaults.Generate.Exclude.Reserved)
	v.SetDefault("generate.pattern", defaults.Generate.Pattern)
	v.SetDefault("generate.glob", defaults.Generate.Glob)
	v.SetDefault("generate.lexicon", defaults.Generate.Lexicon)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.title_case", defaults.Output.TitleCase)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
//
// Validation uses Concrete(false) because every config field is optional, and
// the result decodes to a map so Viper keeps its defaults and env overrides.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecode[map[string]any](
		configSchema, data, "#Config",
		cueutil.WithFilename(path),
		cueutil.WithConcrete(false),
		cueutil.WithMaxFileSize(MaxFileSize),
	)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default config file into dir (ConfigDir()
// when empty) unless one already exists. It returns the file path and whether
// the file was created.
func CreateDefaultConfig(dir string) (string, bool, error) {
	cfgPath, err := FilePath(dir)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := Save(DefaultConfig(), dir); err != nil {
		return "", false, err
	}
	return cfgPath, true, nil
}

// Save writes cfg to the config file in dir (ConfigDir() when empty).
func Save(cfg *Config, dir string) error {
	cfgPath, err := FilePath(dir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// palinimi configuration file\n")
	sb.WriteString("// Every field is optional; see 'palinimi config --help'.\n\n")

	g := cfg.Generate
	sb.WriteString("generate: {\n")
	fmt.Fprintf(&sb, "\tmin_syllables: %d\n", g.MinSyllables)
	fmt.Fprintf(&sb, "\tmax_syllables: %d\n", g.MaxSyllables)
	sb.WriteString("\texclude: {\n")
	fmt.Fprintf(&sb, "\t\tpu:       %v\n", g.Exclude.Pu)
	fmt.Fprintf(&sb, "\t\tku_suli:  %v\n", g.Exclude.KuSuli)
	fmt.Fprintf(&sb, "\t\tku_lili:  %v\n", g.Exclude.KuLili)
	fmt.Fprintf(&sb, "\t\tsu:       %v\n", g.Exclude.Su)
	fmt.Fprintf(&sb, "\t\treserved: %v\n", g.Exclude.Reserved)
	sb.WriteString("\t}\n")
	fmt.Fprintf(&sb, "\tpattern: %q\n", g.Pattern)
	if g.Glob != "" {
		fmt.Fprintf(&sb, "\tglob: %q\n", g.Glob)
	}
	if g.Lexicon != "" {
		fmt.Fprintf(&sb, "\tlexicon: %q\n", g.Lexicon)
	}
	sb.WriteString("}\n")

	sb.WriteString("\noutput: {\n")
	fmt.Fprintf(&sb, "\tformat:     %q\n", cfg.Output.Format)
	fmt.Fprintf(&sb, "\ttitle_case: %v\n", cfg.Output.TitleCase)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose:      %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}
