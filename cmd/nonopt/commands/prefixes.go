package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPrefixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes",
		Short: "Print the active non-opt prefix list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rule, err := c.app.Rule(options(cmd))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "# clears %s\n", rule.Key())
			for _, p := range rule.Prefixes() {
				_, _ = fmt.Fprintln(w, p)
			}
			return nil
		},
	}
}
