package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all components in the graph with their install state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, r := range records {
				state := " "
				if r.Installed {
					state = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", state, r.URI.String(), r.Name)
			}
			return w.Flush()
		},
	}
}
