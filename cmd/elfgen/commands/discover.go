package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover [root]",
		Short: "List discovered programs without building anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			result, err := c.app.Discover(cmd.Context(), root)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Listing())
			return nil
		},
	}
}
