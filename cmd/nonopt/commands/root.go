// Package commands implements the CLI commands for the nonopt build hook.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nonopt/internal/app"
	"go.trai.ch/nonopt/internal/build"
)

// CLI represents the command line interface for nonopt.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nonopt",
		Short:         "Per-directory optimization override hook",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the hook file (default: ./nonopt.yaml or built-in prefixes)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newPrefixesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	return app.Options{ConfigPath: configPath}
}
