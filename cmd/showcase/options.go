package main

import (
	"strconv"

	"github.com/BrandonKowalski/showcase/pkg/showcase/config"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath   string
	platform     string
	reduceMotion bool
	logLevel     string
	link         string
}

// load reads the configuration file and environment, then applies any
// flags that were set on the command line.
func (o *options) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv(o.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("platform") {
		cfg.Platform = o.platform
	}
	if flags.Changed("reduce-motion") {
		cfg.ReduceMotion = strconv.FormatBool(o.reduceMotion)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	return cfg, cfg.Validate()
}
