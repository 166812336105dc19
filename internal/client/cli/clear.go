package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *Cli) clearCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop local data, cache and pending mutations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runClear(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (c *Cli) runClear(ctx context.Context, yes bool) error {
	if !yes {
		if n := c.app.Status(ctx).QueueLength; n > 0 {
			c.io.Printf("⚠️  %d pending mutation(s) will be lost.\n", n)
		}
		answer, err := c.io.ReadInput("Clear all local data? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if a := strings.ToLower(answer); a != "y" && a != "yes" {
			c.io.Println("Aborted.")
			return nil
		}
	}

	if err := c.app.ClearCache(ctx); err != nil {
		return fmt.Errorf("failed to clear local data: %w", err)
	}
	c.io.Println("✓ Local data cleared")
	return nil
}
