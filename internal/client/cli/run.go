package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func (c *Cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Keep the client running: watch connectivity and sync on schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runDaemon(ctx)
		},
	}
}

// runDaemon blocks until ctx is done.
func (c *Cli) runDaemon(ctx context.Context) error {
	if err := c.app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start background jobs: %w", err)
	}
	c.io.Println("Client is running. Press Ctrl+C to stop.")

	<-ctx.Done()
	c.io.Println("Shutting down...")
	return nil
}
