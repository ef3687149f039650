package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestInterruptCancelsCommandContext runs the command tree the way main
// does and checks that SIGINT reaches a running command as context
// cancellation rather than killing the process.
func TestInterruptCancelsCommandContext(t *testing.T) {
	waitCmd := &cobra.Command{
		Use:    "wait-for-cancel",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			select {
			case <-cmd.Context().Done():
				return nil
			case <-time.After(5 * time.Second):
				return fmt.Errorf("command context was never cancelled")
			}
		},
	}
	rootCmd.AddCommand(waitCmd)
	rootCmd.SetArgs([]string{"wait-for-cancel"})
	t.Cleanup(func() {
		rootCmd.RemoveCommand(waitCmd)
		rootCmd.SetArgs(nil)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
	}()

	require.NoError(t, Execute(ctx))
}
