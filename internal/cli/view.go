package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show or change the zoom and pan of the board",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current zoom and pan",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.printView(cmd)
			},
		},
		&cobra.Command{
			Use:   "zoom <factor>",
			Short: "Set the zoom factor (0.25 to 3)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(args[0])
				if err != nil {
					return err
				}
				a.board.SetZoom(v[0])
				return a.printView(cmd)
			},
		},
		&cobra.Command{
			Use:   "pan <x> <y>",
			Short: "Set the pan offset",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(args...)
				if err != nil {
					return err
				}
				if err := a.board.SetPan(v[0], v[1]); err != nil {
					return err
				}
				return a.printView(cmd)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Reset zoom to 1 and pan to 0,0",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.board.ResetView()
				return a.printView(cmd)
			},
		},
	)
	return cmd
}

func (a *app) printView(cmd *cobra.Command) error {
	v := a.board.View()
	if a.flags.jsonMode {
		return writeJSON(out(cmd), toViewOut(v))
	}
	_, err := fmt.Fprintf(out(cmd), "zoom %g, pan %g,%g\n", v.Zoom, v.PanX, v.PanY)
	return err
}
