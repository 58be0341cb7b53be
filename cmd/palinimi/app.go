// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/palinimi/palinimi/internal/config"
	"github.com/palinimi/palinimi/internal/issue"
	"github.com/palinimi/palinimi/pkg/lexicon"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and load
	// configuration through its ConfigProvider.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp. Tests can supply mock implementations
	// to isolate specific service behavior.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	// This abstraction enables testing with custom config sources or mock implementations.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// session holds the state of one invocation: the global flag values and
	// the configuration resolved from them.
	session struct {
		app         *App
		verbose     bool
		configPath  string
		lexiconPath string
		cfg         *config.Config
	}
)

// NewApp creates an App with production defaults for nil dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// loadConfig resolves the session configuration. A failure to load an
// explicitly requested file is fatal; any other failure is logged and the
// built-in defaults are used instead.
func (s *session) loadConfig(ctx context.Context) error {
	cfg, err := s.app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: s.configPath})
	if err != nil {
		if s.configPath != "" {
			return s.fail(newServiceError(err, issue.ConfigLoadFailedId, ""))
		}
		slog.Warn("failed to load config, using defaults", "error", formatErrorForDisplay(err, s.verbose))
		cfg = config.DefaultConfig()
	}

	s.cfg = cfg
	if cfg.UI.Verbose && !s.verbose {
		s.verbose = true
		setupLogging(s.app.stderr, true)
	}
	return nil
}

// loadLexicon returns the lexicon named by --lexicon or generate.lexicon,
// or the built-in one when neither is set.
func (s *session) loadLexicon() (*lexicon.Lexicon, error) {
	path := s.lexiconPath
	if path == "" && s.cfg != nil {
		path = s.cfg.Generate.Lexicon
	}
	if path == "" {
		return lexicon.Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, s.fail(issue.NewErrorContext().
			WithOperation("read lexicon").
			WithResource(path).
			WithSuggestions(
				"Check that the file exists and is readable",
				"Pass --lexicon '' to use the built-in word lists",
			).
			WithIssue(issue.LexiconLoadFailedId).
			Wrap(err).
			BuildError())
	}

	lex, err := lexicon.Parse(data, path)
	if err != nil {
		parseErr := issue.WrapWithContext(err, "parse lexicon", path)
		parseErr.Issue = issue.LexiconLoadFailedId
		return nil, s.fail(parseErr)
	}

	slog.Debug("loaded lexicon", "path", path)
	return lex, nil
}

// helpStyle returns the glamour style for rendered issue help.
func (s *session) helpStyle() string {
	if s.cfg == nil {
		return string(config.ColorSchemeAuto)
	}
	return string(s.cfg.UI.ColorScheme)
}

// fail renders the issue help for err on stderr and returns err as a
// ServiceError. Errors without a catalog entry are returned unchanged.
func (s *session) fail(err error) error {
	svcErr, ok := err.(*ServiceError)
	if !ok {
		id := classifyError(err)
		if id == 0 {
			return err
		}
		svcErr = newServiceError(err, id, "")
	}

	slog.Debug("command failed", "issue", int(svcErr.IssueID), "error", svcErr.Err)
	renderServiceError(s.app.stderr, svcErr, s.helpStyle())
	return svcErr
}
