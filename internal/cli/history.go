package cli

import (
	"github.com/spf13/cobra"
)

func newUndoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last change",
		Long:  "Undo the last change. History starts fresh each time the board is opened,\nso undo is most useful inside `corkboard shell`.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.board.Undo() {
				return a.done(cmd, "Nothing to undo")
			}
			return a.done(cmd, "Undone (%d pins)", len(a.board.Pins()))
		},
	}
}

func newRedoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "redo",
		Short: "Redo the last undone change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.board.Redo() {
				return a.done(cmd, "Nothing to redo")
			}
			return a.done(cmd, "Redone (%d pins)", len(a.board.Pins()))
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every pin and reset the view; snapshots are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return usagef("clear erases the board; pass --yes to confirm")
			}
			a.board.ClearBoard()
			return a.done(cmd, "Board cleared")
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the board")
	return cmd
}
