package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <uri>",
		Short: "Show a single component with its metadata and install state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.app.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "URI:       %s\n", r.URI.String())
			fmt.Fprintf(out, "Name:      %s\n", r.Name)
			if r.Help != "" {
				fmt.Fprintf(out, "Help:      %s\n", r.Help)
			}
			if r.ConfigKey != "" {
				fmt.Fprintf(out, "Config:    %s\n", r.ConfigKey)
			}
			fmt.Fprintf(out, "Installed: %t\n", r.Installed)
			for _, dep := range r.Requires {
				fmt.Fprintf(out, "Requires:  %s\n", dep.String())
			}
			for _, ext := range r.External {
				fmt.Fprintf(out, "External:  %s\n", ext)
			}
			if len(r.Readme) > 0 {
				fmt.Fprintf(out, "\n%s", r.Readme)
			}
			return nil
		},
	}
}
