package cli

import (
	"github.com/spf13/cobra"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Aliases: []string{"snap"},
		Short:   "Save and restore named copies of the board",
		Long:    "Snapshots are addressed by ID, the short ID shown in listings, or exact name.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "save <name>",
			Short: "Save the current pins under a name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := a.board.SaveSnapshot(args[0])
				if err != nil {
					return err
				}
				s, _ := a.board.Snapshot(id)
				if a.flags.jsonMode {
					return writeJSON(out(cmd), toSnapshotOut(s))
				}
				return a.done(cmd, "Saved snapshot %s %q (%d pins)", shortID(s.ID), s.Name, len(s.Pins))
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List snapshots",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				snaps := a.board.Snapshots()
				if a.flags.jsonMode {
					outs := make([]snapshotOut, 0, len(snaps))
					for _, s := range snaps {
						outs = append(outs, toSnapshotOut(s))
					}
					return writeJSON(out(cmd), outs)
				}
				return printSnapshots(out(cmd), snaps)
			},
		},
		&cobra.Command{
			Use:   "load <snapshot>",
			Short: "Replace the board's pins with a snapshot (undoable)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.resolveSnapshot(args[0])
				if err != nil {
					return err
				}
				if err := a.board.LoadSnapshot(s.ID); err != nil {
					return err
				}
				return a.done(cmd, "Loaded snapshot %q (%d pins)", s.Name, len(s.Pins))
			},
		},
		&cobra.Command{
			Use:   "rename <snapshot> <name>",
			Short: "Rename a snapshot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.resolveSnapshot(args[0])
				if err != nil {
					return err
				}
				if err := a.board.RenameSnapshot(s.ID, args[1]); err != nil {
					return err
				}
				return a.done(cmd, "Renamed snapshot %s", shortID(s.ID))
			},
		},
		&cobra.Command{
			Use:     "delete <snapshot>",
			Aliases: []string{"rm"},
			Short:   "Delete a snapshot",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.resolveSnapshot(args[0])
				if err != nil {
					return err
				}
				if err := a.board.DeleteSnapshot(s.ID); err != nil {
					return err
				}
				return a.done(cmd, "Deleted snapshot %q", s.Name)
			},
		},
	)
	return cmd
}
