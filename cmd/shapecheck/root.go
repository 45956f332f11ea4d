package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validation/pkg/config"
	"github.com/dmitrymomot/validation/pkg/httpserver"
	"github.com/dmitrymomot/validation/pkg/logger"
	"github.com/dmitrymomot/validation/pkg/requestid"
	"github.com/dmitrymomot/validation/pkg/shapehttp"
)

// errInvalid is returned when at least one document failed. The details
// have already been printed.
var errInvalid = errors.New("validation failed")

type cliConfig struct {
	Shape   string `env:"SHAPECHECK_SHAPE"`
	Format  string `env:"SHAPECHECK_FORMAT" envDefault:"text"`
	Log     logger.Config
	HTTP    httpserver.Config
	Request shapehttp.Config
}

// app is the state shared by every subcommand.
type app struct {
	cfg      cliConfig
	log      *slog.Logger
	envFiles []string
	noColor  bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Nop()}

	rootCmd := &cobra.Command{
		Use:   "shapecheck",
		Short: "Validate documents against built-in shapes",
		Long: `shapecheck checks JSON or YAML data files against validation trees built
into the binary, and serves the same trees over HTTP. Every failing field is
reported, not only the first one.

Settings can also come from the environment:
  SHAPECHECK_SHAPE    default shape for validate
  SHAPECHECK_FORMAT   report format, text or json
  LOG_LEVEL, LOG_FORMAT
                      diagnostic logging on stderr
  HTTP_*, SHAPE_*     server and request settings for serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load environment variables from these files first")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newShapesCmd())
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(a.envFiles...); err != nil {
		return err
	}
	cfg, err := config.Parse[cliConfig]()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.noColor {
		color.NoColor = true
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = logger.FormatText
	}
	if cfg.Log.Level == nil {
		level := slog.LevelWarn
		cfg.Log.Level = &level
	}
	opts := []logger.Option{logger.WithContextExtractors(requestid.LogExtractor())}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	a.log = logger.FromConfig(cfg.Log, cmd.ErrOrStderr(), opts...).With(logger.Component("shapecheck"))
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}
