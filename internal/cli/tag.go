package cli

import (
	"github.com/spf13/cobra"
)

func newTagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Add or remove pin tags",
	}
	cmd.AddCommand(
		a.tagEditCmd("add <pin> <tag>...", "Add tags to a pin", a.addTag),
		a.tagEditCmd("remove <pin> <tag>...", "Remove tags from a pin", a.removeTag),
	)
	return cmd
}

func (a *app) addTag(pinID, tag string) error    { return a.board.AddTag(pinID, tag) }
func (a *app) removeTag(pinID, tag string) error { return a.board.RemoveTag(pinID, tag) }

func (a *app) tagEditCmd(use, short string, edit func(pinID, tag string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			for _, tag := range args[1:] {
				if err := edit(p.ID, tag); err != nil {
					return err
				}
			}
			if _, err := a.board.Commit(); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}
