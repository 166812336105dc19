package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
)

func (c *Cli) clubsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Browse and edit clubs",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List clubs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runListClubs(cmd.Context())
		},
	}

	var draft models.ClubDraft
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a club",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runAddClub(cmd.Context(), draft)
		},
	}
	addClubFlags(add, &draft)
	_ = add.MarkFlagRequired("name")

	var fields models.ClubDraft
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update club fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUpdateClub(cmd.Context(), args[0], changedFields(cmd,
				field{flag: "name", key: "name", value: fields.Name},
				field{flag: "description", key: "description", value: fields.Description},
				field{flag: "category", key: "category", value: fields.Category},
				field{flag: "city", key: "city", value: fields.City},
				field{flag: "owner", key: "owner_id", value: fields.OwnerID},
			))
		},
	}
	addClubFlags(update, &fields)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeleteClub(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func addClubFlags(cmd *cobra.Command, draft *models.ClubDraft) {
	f := cmd.Flags()
	f.StringVar(&draft.Name, "name", "", "club name")
	f.StringVar(&draft.Description, "description", "", "club description")
	f.StringVar(&draft.Category, "category", "", "club category")
	f.StringVar(&draft.City, "city", "", "club city")
	f.StringVar(&draft.OwnerID, "owner", "", "owner identifier")
}

func (c *Cli) runListClubs(ctx context.Context) error {
	clubs, err := c.app.LoadClubs(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Clubs ===")
	c.io.Println()
	if len(clubs) == 0 {
		c.io.Println("No clubs found.")
		return nil
	}
	for _, club := range clubs {
		c.io.Printf("%-36s  %-24s  %-12s  %s%s\n",
			club.ID, club.Name, club.Category, club.City, pendingMark(club.ID))
	}
	c.io.Println()
	c.io.Printf("Total: %d\n", len(clubs))
	return nil
}

func (c *Cli) runAddClub(ctx context.Context, draft models.ClubDraft) error {
	club, err := c.app.CreateClubOptimistic(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	c.io.Printf("✓ Club created: %s%s\n", club.ID, pendingMark(club.ID))
	return nil
}

func (c *Cli) runUpdateClub(ctx context.Context, id string, changes map[string]any) error {
	if len(changes) == 0 {
		return errors.New("nothing to update, pass at least one field flag")
	}
	club, err := c.app.UpdateClubOptimistic(ctx, id, changes)
	if err != nil {
		return fmt.Errorf("failed to update club: %w", err)
	}
	c.io.Printf("✓ Club updated: %s (%s)\n", club.ID, club.Name)
	return nil
}

func (c *Cli) runDeleteClub(ctx context.Context, id string) error {
	if _, err := c.app.DeleteClubOptimistic(ctx, id); err != nil {
		if errors.Is(err, optimistic.ErrNotFound) {
			return fmt.Errorf("club %s not found", id)
		}
		return fmt.Errorf("failed to delete club: %w", err)
	}
	c.io.Printf("✓ Club deleted: %s\n", id)
	return nil
}
