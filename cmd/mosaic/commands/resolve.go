package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <uri>...",
		Short: "Compute the install set for a selection of components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Resolve(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Needed) == 0 {
				fmt.Fprintln(out, "nothing to install")
				return nil
			}

			fmt.Fprintln(out, "components to install:")
			for _, uri := range slices.Sorted(maps.Keys(res.Needed)) {
				fmt.Fprintf(out, "  %s\n", uri)
			}

			if len(res.ConfigKeys) > 0 {
				fmt.Fprintln(out, "config keys:")
				for _, key := range slices.Sorted(maps.Keys(res.ConfigKeys)) {
					fmt.Fprintf(out, "  %s (%s)\n", key, res.ConfigKeys[key])
				}
			}

			if len(res.ExternalDeps) > 0 {
				fmt.Fprintln(out, "python dependencies:")
				for _, dep := range slices.Sorted(maps.Keys(res.ExternalDeps)) {
					fmt.Fprintf(out, "  %s\n", dep)
				}
			}
			return nil
		},
	}
}
