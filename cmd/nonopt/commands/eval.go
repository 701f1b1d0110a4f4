package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <reldir>",
		Short: "Apply the hook to one directory and print the resulting compile flags",
		Long: "Apply the hook to the directory at <reldir>, relative to the build tree root.\n" +
			"Compile flags are given as repeated --flag KEY=VALUE assignments and printed as YAML.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetStringArray("flag")

			res, err := c.app.Eval(args[0], assignments, options(cmd))
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(map[string][]string(res.Flags))
			if err != nil {
				return zerr.Wrap(err, "failed to encode compile flags")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringArray("flag", nil, "Compile flag assignment KEY=VALUE (repeatable)")
	return cmd
}
