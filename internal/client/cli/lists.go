package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
)

func (c *Cli) listsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage custom club lists",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show custom lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runListLists(cmd.Context())
		},
	}

	var draft models.ListDraft
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a custom list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runAddList(cmd.Context(), draft)
		},
	}
	addListFlags(add, &draft)
	_ = add.MarkFlagRequired("name")

	var fields models.ListDraft
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a custom list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUpdateList(cmd.Context(), args[0], changedFields(cmd,
				field{flag: "name", key: "name", value: fields.Name},
				field{flag: "description", key: "description", value: fields.Description},
				field{flag: "clubs", key: "club_ids", value: fields.ClubIDs},
			))
		},
	}
	addListFlags(update, &fields)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDeleteList(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func addListFlags(cmd *cobra.Command, draft *models.ListDraft) {
	f := cmd.Flags()
	f.StringVar(&draft.Name, "name", "", "list name")
	f.StringVar(&draft.Description, "description", "", "list description")
	f.StringSliceVar(&draft.ClubIDs, "clubs", nil, "comma separated club ids")
}

func (c *Cli) runListLists(ctx context.Context) error {
	lists, err := c.app.LoadCustomLists(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Custom Lists ===")
	c.io.Println()
	if len(lists) == 0 {
		c.io.Println("No custom lists.")
		return nil
	}
	for _, l := range lists {
		c.io.Printf("%-36s  %-24s  %d club(s)%s\n", l.ID, l.Name, len(l.ClubIDs), pendingMark(l.ID))
		if len(l.ClubIDs) > 0 {
			c.io.Printf("    %s\n", strings.Join(l.ClubIDs, ", "))
		}
	}
	return nil
}

func (c *Cli) runAddList(ctx context.Context, draft models.ListDraft) error {
	l, err := c.app.CreateListOptimistic(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}
	c.io.Printf("✓ List created: %s%s\n", l.ID, pendingMark(l.ID))
	return nil
}

func (c *Cli) runUpdateList(ctx context.Context, id string, changes map[string]any) error {
	if len(changes) == 0 {
		return errors.New("nothing to update, pass at least one field flag")
	}
	l, err := c.app.UpdateListOptimistic(ctx, id, changes)
	if err != nil {
		return fmt.Errorf("failed to update list: %w", err)
	}
	c.io.Printf("✓ List updated: %s (%s)\n", l.ID, l.Name)
	return nil
}

func (c *Cli) runDeleteList(ctx context.Context, id string) error {
	if _, err := c.app.DeleteListOptimistic(ctx, id); err != nil {
		if errors.Is(err, optimistic.ErrNotFound) {
			return fmt.Errorf("list %s not found", id)
		}
		return fmt.Errorf("failed to delete list: %w", err)
	}
	c.io.Printf("✓ List deleted: %s\n", id)
	return nil
}
