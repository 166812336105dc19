package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) favoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite clubs",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List favorite clubs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.runListFavorites(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add <club-id>",
			Short: "Mark a club as favorite",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.app.AddFavorite(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to add favorite: %w", err)
				}
				c.io.Printf("✓ Added to favorites: %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <club-id>",
			Short: "Remove a club from favorites",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.app.RemoveFavorite(cmd.Context(), args[0]); err != nil {
					return fmt.Errorf("failed to remove favorite: %w", err)
				}
				c.io.Printf("✓ Removed from favorites: %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func (c *Cli) runListFavorites(ctx context.Context) error {
	favorites, err := c.app.LoadFavorites(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Favorites ===")
	c.io.Println()
	if len(favorites) == 0 {
		c.io.Println("No favorites yet.")
		return nil
	}
	for _, fav := range favorites {
		added := "-"
		if !fav.CreatedAt.IsZero() {
			added = fav.CreatedAt.Local().Format(time.DateOnly)
		}
		c.io.Printf("%-36s  added %s\n", fav.ClubID, added)
	}
	return nil
}
