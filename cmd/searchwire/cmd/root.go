// Package cmd provides the CLI commands for searchwire.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/searchwire/searchwire/internal/config"
	"github.com/searchwire/searchwire/internal/logger"
	"github.com/searchwire/searchwire/internal/version"
)

// app carries the configuration and logger shared by every subcommand.
type app struct {
	cfg config.Config
	log *zap.Logger
}

// NewRootCmd creates the root command for the searchwire CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var cfgPath, logLevel, logFormat string

	cmd := &cobra.Command{
		Use:   "searchwire",
		Short: "Compose, validate and inspect search node requests",
		Long: `Searchwire builds and inspects the request and query objects of a
distributed search system: analyze requests in their binary wire form,
and boolean filter trees in their structured document form.

Request and filter definitions are read from YAML files; see the
analyze and filter subcommands.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if logFormat != "" {
				cfg.Logging.Format = logFormat
			}
			log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.SetVersionTemplate("searchwire version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console, json")

	cmd.AddCommand(newAnalyzeCmd(a))
	cmd.AddCommand(newFilterCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
