package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/internal/imaging"
	"github.com/mesh-intelligence/corkboard/internal/query"
	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func newPinCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Add, inspect and arrange pins",
	}
	cmd.AddCommand(
		newPinAddCmd(a),
		newPinListCmd(a),
		newPinShowCmd(a),
		newPinUpdateCmd(a),
		newPinDeleteCmd(a),
		newPinMoveCmd(a),
		newPinResizeCmd(a),
		newPinFrontCmd(a),
		newPinSelectCmd(a),
		newPinDupCmd(a),
	)
	return cmd
}

func newPinAddCmd(a *app) *cobra.Command {
	var (
		x, y    float64
		content string
		color   string
		tags    []string
	)
	cmd := &cobra.Command{
		Use:   "add <text|list|image> [image-file]",
		Short: "Pin a note, checklist or image",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				d   types.Draft
				err error
			)
			switch kind := types.PinType(args[0]); kind {
			case types.PinText, types.PinList:
				if len(args) != 1 {
					return usagef("%s pins take no file argument", kind)
				}
				d, err = types.NewDraft(kind, x, y)
			case types.PinImage:
				if len(args) != 2 {
					return usagef("image pins need an image file")
				}
				d, err = imaging.DraftFromFile(args[1], x, y)
			default:
				return usagef("unknown pin type %q (want text, list or image)", args[0])
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("content") {
				d.Content = content
			}
			d.Color = color
			d.Tags = append(d.Tags, tags...)

			id, err := a.board.AddPin(d)
			if err != nil {
				return err
			}
			return a.printPinByID(cmd, id)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&x, "x", 0, "board x position")
	f.Float64Var(&y, "y", 0, "board y position")
	f.StringVar(&content, "content", "", "note text, checklist title or image caption")
	f.StringVar(&color, "color", "", "background color (default: random palette color)")
	f.StringSliceVar(&tags, "tag", nil, "tag to attach (repeatable)")
	return cmd
}

func newPinListCmd(a *app) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pins from back to front",
		Long: "List pins in stacking order. --where filters with an expression over\n" +
			"id, type, x, y, width, height, content, color, tags, zIndex, imageUrl,\n" +
			"items and done, for example:\n\n" +
			"  corkboard pin list --where 'type == \"list\" && done < items'",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pins := types.StackOrder(a.board.Pins())
			if where != "" {
				f, err := query.Compile(where)
				if err != nil {
					return usagef("%v", err)
				}
				if pins, err = f.Select(pins); err != nil {
					return err
				}
			}
			selected := a.board.SelectedID()
			if a.flags.jsonMode {
				outs := make([]pinOut, 0, len(pins))
				for _, p := range pins {
					outs = append(outs, toPinOut(p, selected))
				}
				return writeJSON(out(cmd), outs)
			}
			return printPins(out(cmd), pins, selected)
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "filter expression")
	return cmd
}

func newPinShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <pin>",
		Short: "Show one pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}

func newPinUpdateCmd(a *app) *cobra.Command {
	var (
		x, y, width, height float64
		content, color      string
		tags                []string
	)
	cmd := &cobra.Command{
		Use:   "update <pin>",
		Short: "Change pin fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			var patch types.PinPatch
			f := cmd.Flags()
			if f.Changed("x") {
				patch.X = &x
			}
			if f.Changed("y") {
				patch.Y = &y
			}
			if f.Changed("width") {
				patch.Width = &width
			}
			if f.Changed("height") {
				patch.Height = &height
			}
			if f.Changed("content") {
				patch.Content = &content
			}
			if f.Changed("color") {
				patch.Color = &color
			}
			if f.Changed("tags") {
				patch.Tags = &tags
			}
			if patch.Empty() {
				return usagef("nothing to update; pass at least one field flag")
			}
			if err := a.board.UpdatePin(p.ID, patch); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&x, "x", 0, "board x position")
	f.Float64Var(&y, "y", 0, "board y position")
	f.Float64Var(&width, "width", 0, "width")
	f.Float64Var(&height, "height", 0, "height")
	f.StringVar(&content, "content", "", "note text, checklist title or image caption")
	f.StringVar(&color, "color", "", "background color")
	f.StringSliceVar(&tags, "tags", nil, "replace all tags (comma separated)")
	return cmd
}

func newPinDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <pin>",
		Aliases: []string{"rm"},
		Short:   "Remove a pin",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			if err := a.board.DeletePin(p.ID); err != nil {
				return err
			}
			return a.done(cmd, "Deleted pin %s", shortID(p.ID))
		},
	}
}

// newGestureCmd builds move and resize: one gesture per invocation, so the
// change is a single undo step.
func newGestureCmd(a *app, use, short string, kind board.GestureKind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			v, err := parseFloats(args[1], args[2])
			if err != nil {
				return err
			}
			if err := a.board.BeginGesture(kind, p.ID); err != nil {
				return err
			}
			if err := a.board.UpdateGesture(v[0], v[1]); err != nil {
				_ = a.board.CancelGesture()
				return err
			}
			if _, err := a.board.EndGesture(); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}

func newPinMoveCmd(a *app) *cobra.Command {
	return newGestureCmd(a, "move <pin> <x> <y>", "Move a pin", board.GestureMove)
}

func newPinResizeCmd(a *app) *cobra.Command {
	return newGestureCmd(a, "resize <pin> <width> <height>", "Resize a pin (clamped to its minimum size)", board.GestureResize)
}

func newPinFrontCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "front <pin>",
		Short: "Bring a pin to the front",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			if err := a.board.BringToFront(p.ID); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}

func newPinSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select [pin]",
		Short: "Select a pin and bring it to front, or clear the selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := a.board.SelectPin(""); err != nil {
					return err
				}
				return a.done(cmd, "Selection cleared")
			}
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			if err := a.board.SelectPin(p.ID); err != nil {
				return err
			}
			return a.printPinByID(cmd, p.ID)
		},
	}
}

func newPinDupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dup <pin>",
		Short: "Duplicate a pin, offset by 30,30",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolvePin(args[0])
			if err != nil {
				return err
			}
			id, err := a.board.DuplicatePin(p.ID)
			if err != nil {
				return err
			}
			return a.printPinByID(cmd, id)
		},
	}
}

// printPinByID prints the current state of a pin.
func (a *app) printPinByID(cmd *cobra.Command, id string) error {
	p, ok := a.board.Pin(id)
	if !ok {
		return fmt.Errorf("pin %s: %w", shortID(id), types.ErrNotFound)
	}
	selected := a.board.SelectedID()
	if a.flags.jsonMode {
		return writeJSON(out(cmd), toPinOut(p, selected))
	}
	return printPin(out(cmd), p, selected)
}

// done reports a completed action without a result body.
func (a *app) done(cmd *cobra.Command, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if a.flags.jsonMode {
		return writeJSON(out(cmd), map[string]string{"status": "ok", "message": msg})
	}
	_, err := fmt.Fprintln(out(cmd), msg)
	return err
}
