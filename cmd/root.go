// Package cmd is the theo command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tantralabs/theo/logger"
	"github.com/tantralabs/theo/settings"
)

// app carries the global flags and the settings loaded from them.
type app struct {
	configFile string
	logLevel   string
	conf       settings.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "theo",
		Short:        "theo",
		Long:         `theo prices European options with Black-Scholes-Merton and estimates historical volatility`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.load()
		},
		Run: func(c *cobra.Command, args []string) {
			_ = c.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (json, yaml or toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")

	root.AddCommand(
		newPriceCmd(a),
		newGreeksCmd(a),
		newChainCmd(a),
		newVolCmd(a),
	)
	return root
}

func (a *app) load() error {
	conf, err := settings.Load(a.configFile)
	if err != nil {
		return err
	}
	a.conf = conf
	logger.InitLogger(conf.Log.Encoding)
	level := conf.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	return logger.SetLevel(level)
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
