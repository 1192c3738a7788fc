// Package commands implements the rulekit CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/messages"
	"github.com/dmitrymomot/rulekit/pkg/validator"
	"github.com/dmitrymomot/rulekit/pkg/validator/schema"
)

const version = "0.1.0"

// errValidationFailed is returned when at least one document fails. The
// report has already been printed, so Execute does not print it again.
var errValidationFailed = errors.New("validation failed")

var errNoSchema = errors.New("no schema file: use --schema or RULEKIT_SCHEMA")

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfg       Config
	configErr error
	jsonOut   bool
	noColor   bool

	log     *slog.Logger
	engine  *validator.Engine
	schema  *schema.Schema
	catalog *messages.Catalog
}

// Execute runs the root command and prints any error except a failed
// validation to stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, errValidationFailed) {
		fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Error: %v", err))
	}
	return err
}

// NewRootCmd builds the command tree. Environment configuration is read
// once here and used as flag defaults.
func NewRootCmd() *cobra.Command {
	a := &app{}
	a.cfg, a.configErr = loadConfig()

	root := &cobra.Command{
		Use:   "rulekit",
		Short: "Validate JSON documents against declarative rule schemas",
		Long: `rulekit validates JSON documents against the targets declared in a
YAML or JSON schema file, using the built-in rule set.

Every flag has an environment default:
  --schema     RULEKIT_SCHEMA
  --locales    RULEKIT_LOCALES
  --lang       RULEKIT_LANG
  --fail-fast  RULEKIT_FAIL_FAST
  --log-level  RULEKIT_LOG_LEVEL
  (profile)    RULEKIT_ENV`,
		Example: `  # Validate a document against the User target
  rulekit validate User user.json --schema rules.yaml

  # Read documents from stdin, report in German
  cat users.json | rulekit validate User --schema rules.yaml --lang de

  # Show the declared targets
  rulekit targets --schema rules.yaml`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetVersionTemplate("rulekit version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Schema, "schema", "s", a.cfg.Schema, "schema file declaring targets (.yaml, .yml, .json)")
	flags.StringVar(&a.cfg.Locales, "locales", a.cfg.Locales, "message catalog file or directory (default: built-in catalogs)")
	flags.StringVar(&a.cfg.Lang, "lang", a.cfg.Lang, "preferred message languages, e.g. \"de-CH, en;q=0.8\"")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.BoolVar(&a.cfg.FailFast, "fail-fast", a.cfg.FailFast, "stop each document at the first failing field")
	flags.BoolVar(&a.jsonOut, "json", false, "output results as JSON")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newValidateCmd(a),
		newRulesCmd(a),
		newTargetsCmd(a),
	)
	return root
}

// setup builds the logger, engine, schema and message catalog.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configErr != nil {
		return a.configErr
	}
	if a.noColor {
		color.NoColor = true
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "rulekit"),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(localeAttr),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry := validator.NewRegistry(validator.WithRegistryLogger(a.log))
	validator.RegisterBuiltins(registry)
	store := validator.NewMetadataStore()

	if a.cfg.Schema != "" {
		s, err := schema.LoadFile(ctx, a.cfg.Schema)
		if err != nil {
			return err
		}
		if err := s.Apply(store); err != nil {
			return err
		}
		a.schema = s
	}

	a.catalog, err = messages.New(ctx, catalogSource(a.cfg.Locales), messages.WithLogger(a.log))
	if err != nil {
		return err
	}
	lang := messages.Match(a.cfg.Lang, a.catalog.Languages(), a.catalog.DefaultLanguage())
	cmd.SetContext(messages.WithLocale(ctx, lang))

	a.engine = validator.New(
		validator.WithRegistry(registry),
		validator.WithStore(store),
		validator.WithLogger(a.log),
		validator.WithDefaultTranslator(a.catalog),
	)
	return nil
}

func catalogSource(path string) messages.Source {
	if path == "" {
		return messages.Builtin
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return messages.DirSource(path)
	}
	return messages.FileSource(path)
}

func localeAttr(ctx context.Context) (slog.Attr, bool) {
	if lang := messages.Locale(ctx); lang != "" {
		return slog.String("lang", lang), true
	}
	return slog.Attr{}, false
}
