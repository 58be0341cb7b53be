// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/palinimi/palinimi/internal/issue"
	"github.com/palinimi/palinimi/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Generate.MinSyllables != 1 || cfg.Generate.MaxSyllables != 2 {
		t.Errorf("Generate range = %s, want 1..2", cfg.Generate.Range())
	}
	if cfg.Generate.Pattern != ".*" {
		t.Errorf("Generate.Pattern = %q, want %q", cfg.Generate.Pattern, ".*")
	}
	if cfg.Generate.Exclude != (ExcludeConfig{}) {
		t.Errorf("Generate.Exclude = %+v, want nothing excluded", cfg.Generate.Exclude)
	}
	if cfg.Output.Format != OutputFormatPlain {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, OutputFormatPlain)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
}

func TestConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Cleanup(testutil.SetConfigHome(t, tmpDir))

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error = %v", err)
	}
	if !strings.HasPrefix(dir, tmpDir) || filepath.Base(dir) != AppName {
		t.Errorf("ConfigDir() = %q, want %s/.../%s", dir, tmpDir, AppName)
	}
}

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(testutil.MustChdir(t, dir))

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: filepath.Join(dir, "none")})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != "" {
		t.Errorf("resolved path = %q, want empty", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("loadWithOptions() = %+v, want defaults", cfg)
	}
}

func TestLoad_ConfigDirFile(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `
generate: {
	max_syllables: 3
	exclude: {pu: true, reserved: true}
	pattern: "ka"
}
output: format: "yaml"
`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("resolved path = %q", path)
	}

	if cfg.Generate.MinSyllables != 1 || cfg.Generate.MaxSyllables != 3 {
		t.Errorf("Generate range = %s, want 1..3", cfg.Generate.Range())
	}
	if !cfg.Generate.Exclude.Pu || !cfg.Generate.Exclude.Reserved || cfg.Generate.Exclude.Su {
		t.Errorf("Generate.Exclude = %+v, want pu and reserved", cfg.Generate.Exclude)
	}
	if cfg.Generate.Pattern != "ka" {
		t.Errorf("Generate.Pattern = %q, want %q", cfg.Generate.Pattern, "ka")
	}
	if cfg.Output.Format != OutputFormatYAML {
		t.Errorf("Output.Format = %q, want yaml", cfg.Output.Format)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want default auto", cfg.UI.ColorScheme)
	}
}

func TestLoad_CurrentDirectoryFallback(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `ui: verbose: true`)
	t.Cleanup(testutil.MustChdir(t, dir))

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: filepath.Join(dir, "empty")})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != "config.cue" {
		t.Errorf("resolved path = %q, want config.cue", path)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from ./config.cue")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `generate: max_syllables: 2`)
	t.Cleanup(testutil.MustSetenv(t, "PALINIMI_GENERATE_MAX_SYLLABLES", "4"))
	t.Cleanup(testutil.MustSetenv(t, "PALINIMI_GENERATE_EXCLUDE_KU_LILI", "true"))
	t.Cleanup(testutil.MustSetenv(t, "PALINIMI_OUTPUT_FORMAT", "json"))

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generate.MaxSyllables != 4 {
		t.Errorf("Generate.MaxSyllables = %d, want 4 from env", cfg.Generate.MaxSyllables)
	}
	if !cfg.Generate.Exclude.KuLili {
		t.Error("Generate.Exclude.KuLili = false, want true from env")
	}
	if cfg.Output.Format != OutputFormatJSON {
		t.Errorf("Output.Format = %q, want json from env", cfg.Output.Format)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "PALINIMI_OUTPUT_FORMAT", "csv"))

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidOutputFormat) {
		t.Fatalf("Load() error = %v, want ErrInvalidOutputFormat", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "zero minimum", content: `generate: min_syllables: 0`, want: "generate.min_syllables"},
		{name: "unknown format", content: `output: format: "csv"`, want: "output.format"},
		{name: "unknown field", content: `generate: colour: "red"`, want: "generate.colour"},
		{name: "bad syntax", content: `generate: {`, want: "config.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), tt.content)

			_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
			if err == nil {
				t.Fatal("loadWithOptions() error = nil, want schema error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("loadWithOptions() error = %q, want mention of %q", err, tt.want)
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("error should be *issue.ActionableError, got %T", err)
			}
			if ae.Issue != issue.ConfigLoadFailedId || !ae.HasSuggestions() {
				t.Errorf("ActionableError = %+v, want config issue with suggestions", ae)
			}
		})
	}
}

func TestLoad_RangeCheckedAfterMerge(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `generate: {min_syllables: 3, max_syllables: 2}`)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if !errors.Is(err, ErrInvalidSyllableRange) {
		t.Fatalf("loadWithOptions() error = %v, want ErrInvalidSyllableRange", err)
	}
}

func TestLoad_CustomPath(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "elsewhere.cue")
	testutil.MustWriteFile(t, custom, `output: title_case: true`)
	// A file in the config dir must be ignored when a custom path is given.
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `output: format: "toml"`)

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{ConfigFilePath: custom, ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if path != custom {
		t.Errorf("resolved path = %q, want %q", path, custom)
	}
	if !cfg.Output.TitleCase || cfg.Output.Format != OutputFormatPlain {
		t.Errorf("Output = %+v, want title case with default format", cfg.Output)
	}
}

func TestLoad_CustomPath_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.cue")

	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if err == nil {
		t.Fatal("Load() error = nil, want not found")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("error should be *issue.ActionableError, got %T", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
	if !strings.Contains(ae.Format(false), "palinimi config show") {
		t.Errorf("Format() = %q, want a suggestion", ae.Format(false))
	}
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestCreateDefaultConfigAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "palinimi")

	path, created, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created || path != filepath.Join(dir, "config.cue") {
		t.Fatalf("CreateDefaultConfig() = %q, %v", path, created)
	}

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("round-tripped config = %+v, want defaults", cfg)
	}

	cfg.Generate.Glob = "*la"
	cfg.Generate.Exclude.Su = true
	cfg.UI.ColorScheme = ColorSchemeLight
	if err := Save(cfg, dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, created, err := CreateDefaultConfig(dir); err != nil || created {
		t.Errorf("CreateDefaultConfig() over an existing file = %v, %v, want untouched", created, err)
	}

	reloaded, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("saved config does not load: %v", err)
	}
	if *reloaded != *cfg {
		t.Errorf("reloaded = %+v, want %+v", reloaded, cfg)
	}
}

func TestGenerateCUE_OmitsEmptyGlob(t *testing.T) {
	t.Parallel()

	out := GenerateCUE(DefaultConfig())
	if strings.Contains(out, "glob") {
		t.Errorf("GenerateCUE() wrote an empty glob:\n%s", out)
	}
	for _, want := range []string{"min_syllables: 1", "max_syllables: 2", `pattern: ".*"`, `format:     "plain"`} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateCUE() missing %q:\n%s", want, out)
		}
	}
}

func TestLoad_FileTooLarge(t *testing.T) {
	dir := t.TempDir()
	content := "// " + strings.Repeat("x", int(MaxFileSize)) + "\noutput: title_case: true\n"
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), content)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Fatalf("loadWithOptions() error = %v, want a size error", err)
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Issue != issue.ConfigLoadFailedId {
		t.Errorf("loadWithOptions() error = %v, want a config-load ActionableError", err)
	}
}

func TestLoad_LexiconPath(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), `generate: lexicon: "/srv/words.cue"`)

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("loadWithOptions() error = %v", err)
	}
	if cfg.Generate.Lexicon != "/srv/words.cue" {
		t.Errorf("Generate.Lexicon = %q, want %q", cfg.Generate.Lexicon, "/srv/words.cue")
	}

	cfg.Generate.Lexicon = "words.cue"
	if out := GenerateCUE(cfg); !strings.Contains(out, `lexicon: "words.cue"`) {
		t.Errorf("GenerateCUE() missing the lexicon path:\n%s", out)
	}
	if out := GenerateCUE(DefaultConfig()); strings.Contains(out, "lexicon") {
		t.Errorf("GenerateCUE() wrote an empty lexicon:\n%s", out)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(testutil.MustChdir(t, dir))

	got, err := ResolvePath(LoadOptions{ConfigDirPath: dir})
	if err != nil || got != "" {
		t.Fatalf("ResolvePath() = %q, %v, want empty", got, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte("ui: verbose: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = ResolvePath(LoadOptions{ConfigDirPath: dir})
	if err != nil || got != filepath.Join(dir, "config.cue") {
		t.Errorf("ResolvePath() = %q, %v", got, err)
	}
}
