// Package console holds the signup command-line interface.
package console

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the signup command tree.
func NewRootCommand() *cobra.Command {
	var envFiles []string

	rootCmd := &cobra.Command{
		Use:   "signup",
		Short: "Registration form service",
		Long: `signup serves a registration form that validates on blur and
accepts a submission only when every field passes.

  • serve    browser form with a live websocket session
  • prompt   the same form in the terminal
  • check    validate a record from a file or flags`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load (default: .env)")

	rootCmd.AddCommand(
		serveCmd(&envFiles),
		promptCmd(&envFiles),
		checkCmd(&envFiles),
		versionCmd(),
	)

	return rootCmd
}

// Execute runs the command tree with args and ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
