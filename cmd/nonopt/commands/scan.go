package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/nonopt/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "List the directories built without optimization",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			ignores, _ := cmd.Flags().GetStringSlice("ignore")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			all, _ := cmd.Flags().GetBool("all")

			decisions, err := c.app.Scan(cmd.Context(), root, app.ScanOptions{
				Options: options(cmd),
				Ignores: ignores,
				NoCache: noCache,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, d := range decisions {
				switch {
				case d.Matched && all:
					_, _ = fmt.Fprintf(w, "nonopt\t%s\t%s\n", d.RelativeDir, d.Prefix)
				case d.Matched:
					_, _ = fmt.Fprintln(w, d.RelativeDir)
				case all:
					_, _ = fmt.Fprintf(w, "opt\t%s\n", d.RelativeDir)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("ignore", nil, "Directory name globs to skip")
	cmd.Flags().BoolP("no-cache", "n", false, "Ignore decisions stored by previous scans")
	cmd.Flags().BoolP("all", "a", false, "Print every directory with its decision")
	return cmd
}
