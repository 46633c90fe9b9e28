package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
)

// errReported marks a failure whose details were already printed.
var errReported = errors.New("failed")

// options holds state shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg       *config.Config
	log       *logrus.Logger
	logCloser io.Closer
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "keychord",
		Short:         "Match key events against wildcard chord bindings",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logCloser != nil {
				return opts.logCloser.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is the user config dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newCheckCmd(opts),
		newTreeCmd(opts),
		newReplayCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
// Logs go to stderr so command output stays clean.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := app.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	if cfg.Log.File == "" {
		log.SetOutput(cmd.ErrOrStderr())
	}
	o.cfg, o.log, o.logCloser = cfg, log, closer
	return nil
}

// withKeymap returns a copy of the configuration pointing at path, if set.
func (o *options) withKeymap(path string) *config.Config {
	cfg := *o.cfg
	if path != "" {
		cfg.Keymap.Path = path
	}
	return &cfg
}
