package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/BrandonKowalski/showcase/internal/app"
	"github.com/BrandonKowalski/showcase/pkg/showcase/examples"
	"github.com/spf13/cobra"
)

func routesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Long: `Print every route with its deep-link path, title, entry animation and
back control, as they would be on the selected platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := preparePlan(cmd, opts)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tTITLE\tANIMATION\tBACK")
			for _, e := range plan.Table.Screens {
				link, _ := plan.Resolver.Link(e.Name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, link, e.Options.Title, e.Options.Animation, e.Options.HeaderLeft)
			}
			return w.Flush()
		},
	}
}

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve LINK",
		Short: "Print the route a deep link opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := preparePlan(cmd, opts)
			if err != nil {
				return err
			}

			name, err := plan.Resolver.Resolve(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

// preparePlan derives the route table without opening a window or scanning for
// input devices.
func preparePlan(cmd *cobra.Command, opts *options) (*app.Plan, error) {
	cfg, err := opts.load(cmd)
	if err != nil {
		return nil, err
	}
	env := app.HostEnvironment()
	env.FindRemote = nil
	return app.Prepare(cfg, examples.Registry(), "", env)
}
