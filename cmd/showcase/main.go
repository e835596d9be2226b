package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "showcase",
		Short: "A catalog of animation examples for TV-style devices",
		Long: `Showcase lists animation examples and opens each one on its own screen.

It runs full screen on a TV box or windowed on a desktop, and is driven by
a remote control, a game controller, a keyboard, a mouse or touch.

Start on a specific example with a deep link:

  showcase --link showcase://Spring`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "showcase.toml", "Configuration file")
	flags.StringVar(&opts.platform, "platform", "", `Override platform detection, e.g. "web" or "linux+tv"`)
	flags.BoolVar(&opts.reduceMotion, "reduce-motion", false, "Fade screens in instead of sliding them")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.link, "link", "", "Deep link to open instead of Home")

	rootCmd.AddCommand(
		runCmd(opts),
		routesCmd(opts),
		resolveCmd(opts),
		versionCmd(),
	)

	return rootCmd
}
