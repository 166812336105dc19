package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/clubsync/internal/client/offline"
)

func (c *Cli) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Replay queued mutations and refresh local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSync(cmd.Context())
		},
	}
}

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := c.app.SyncData(ctx)
	if errors.Is(err, offline.ErrOffline) {
		c.io.Printf("Offline: %d mutation(s) stay queued until the server is reachable.\n", result.Remaining)
		return nil
	}
	if err != nil {
		if result != nil {
			c.printSyncResult(result)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}
	if result.Skipped {
		c.io.Println("Synchronization is already in progress.")
		return nil
	}

	c.io.Println("✓ Synchronization completed")
	c.io.Println()
	c.printSyncResult(result)
	return nil
}

func (c *Cli) printSyncResult(result *offline.SyncResult) {
	c.io.Printf("Replayed:    %d mutation(s)\n", result.Replayed)
	if result.Failed > 0 {
		c.io.Printf("Failed:      %d mutation(s)\n", result.Failed)
		for _, itemErr := range result.ItemErrors() {
			c.io.Printf("  - %v\n", itemErr)
		}
	}
	if result.Quarantined > 0 {
		c.io.Printf("Quarantined: %d mutation(s)\n", result.Quarantined)
	}
	if result.Remaining > 0 {
		c.io.Printf("Remaining:   %d mutation(s)\n", result.Remaining)
	}
}
