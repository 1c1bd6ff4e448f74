package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func newItemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Edit checklist items",
		Long:  "Edit the items of a list pin. Items are addressed by ID, the short ID shown in listings, or 1-based position.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <pin> <text>",
			Short: "Append an item",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.resolvePin(args[0])
				if err != nil {
					return err
				}
				if _, err := a.board.AddListItem(p.ID, args[1]); err != nil {
					return err
				}
				return a.printPinByID(cmd, p.ID)
			},
		},
		a.itemEditCmd("toggle <pin> <item>", "Check or uncheck an item", 2,
			func(pinID, itemID string, args []string) error {
				return a.board.ToggleListItem(pinID, itemID)
			}),
		a.itemEditCmd("edit <pin> <item> <text>", "Change an item's text", 3,
			func(pinID, itemID string, args []string) error {
				text := args[2]
				return a.board.UpdateListItem(pinID, itemID, types.ListItemPatch{Text: &text})
			}),
		&cobra.Command{
			Use:     "delete <pin> <item>",
			Aliases: []string{"rm"},
			Short:   "Remove an item",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.resolvePin(args[0])
				if err != nil {
					return err
				}
				itemID, err := resolveItem(p, args[1])
				if err != nil {
					return err
				}
				if err := a.board.DeleteListItem(p.ID, itemID); err != nil {
					return err
				}
				return a.printPinByID(cmd, p.ID)
			},
		},
	)
	return cmd
}

// itemEditCmd builds a live item edit. The edit is committed right away so
// each invocation is one undo step.
func (a *app) itemEditCmd(use, short string, nargs int, edit func(pinID, itemID string, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItem(p, args[1])
			if err != nil {
				return err
			}
			if err := edit(p.ID, itemID, args); err != nil {
				return err
			}
			if _, err := a.board.Commit(); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}
