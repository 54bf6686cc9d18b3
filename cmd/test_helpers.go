package cmd

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
)

// newTestRootCommand creates a bare root command for testing subcommands
func newTestRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "otptick",
		Short: "A terminal one-time password generator",
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	return cmd
}

// executeCommand executes a command and returns its output
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	return executeCommandContext(context.Background(), cmd, args...)
}

// executeCommandContext executes a command under ctx and returns its output
func executeCommandContext(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}
