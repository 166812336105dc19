package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) queueCommand() *cobra.Command {
	var quarantined, retry bool
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show pending mutations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if retry {
				return c.runRetryQuarantined(cmd.Context())
			}
			return c.runQueue(cmd.Context(), quarantined)
		},
	}
	cmd.Flags().BoolVar(&quarantined, "quarantined", false, "show only quarantined mutations")
	cmd.Flags().BoolVar(&retry, "retry", false, "re-arm quarantined mutations for the next sync")
	cmd.MarkFlagsMutuallyExclusive("quarantined", "retry")
	return cmd
}

func (c *Cli) runQueue(ctx context.Context, quarantinedOnly bool) error {
	load := c.app.QueueItems
	title := "=== Sync Queue ==="
	if quarantinedOnly {
		load = c.app.QuarantinedItems
		title = "=== Quarantined Mutations ==="
	}
	items, err := load(ctx)
	if err != nil {
		return err
	}

	c.io.Println(title)
	c.io.Println()
	if len(items) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}
	for _, item := range items {
		c.io.Printf("#%-4d %-8s %-12s queued %s", item.Seq, item.Type, item.Resource,
			item.CreatedAt.Local().Format(time.DateTime))
		if item.Attempts > 0 {
			c.io.Printf("  attempts %d", item.Attempts)
		}
		if item.Quarantined {
			c.io.Printf("  [quarantined]")
		}
		c.io.Println()
		if item.LastError != "" {
			c.io.Printf("      last error: %s\n", item.LastError)
		}
	}
	return nil
}

func (c *Cli) runRetryQuarantined(ctx context.Context) error {
	n, err := c.app.RetryQuarantined(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		c.io.Println("No quarantined mutations.")
		return nil
	}
	c.io.Printf("✓ %d mutation(s) will be retried on the next sync\n", n)
	return nil
}
