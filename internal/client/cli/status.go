package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity, sync and cache status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	st := c.app.Status(ctx)

	c.io.Println("=== Client Status ===")
	c.io.Println()
	if st.Online {
		c.io.Println("Connection: online")
	} else {
		c.io.Println("Connection: offline")
	}

	if st.HasSynced {
		c.io.Printf("Last sync:  %s\n", st.LastFullSync.Local().Format(time.RFC3339))
	} else {
		c.io.Println("Last sync:  never")
	}
	if st.Stale {
		c.io.Println("⚠️  Local data is stale. Run 'clubsync sync' when online.")
	}
	if st.Syncing {
		c.io.Println("Sync in progress...")
	}

	c.io.Println()
	c.io.Printf("Cached items: %d (%s)\n", st.Cache.Items, formatBytes(st.Cache.Size))
	if st.QueueLength > 0 {
		c.io.Printf("⚠️  Pending sync: %d mutation(s) waiting to be synchronized\n", st.QueueLength)
	} else {
		c.io.Println("✓ No pending mutations")
	}
	if st.Quarantined > 0 {
		c.io.Printf("⚠️  Quarantined: %d mutation(s), see 'clubsync queue --quarantined'\n", st.Quarantined)
	}
	return nil
}
