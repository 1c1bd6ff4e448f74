package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/internal/render"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output string
		title  string
	)
	cmd := &cobra.Command{
		Use:       "export <html|json>",
		Short:     "Export the board as an HTML page or JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"html", "json"},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.board.View()
			b := render.Board{
				Title: title,
				Pins:  a.board.Pins(),
				Zoom:  v.Zoom,
				PanX:  v.PanX,
				PanY:  v.PanY,
			}

			var write func(io.Writer) error
			switch args[0] {
			case "html":
				write = func(w io.Writer) error { return render.New().HTML(w, b) }
			case "json":
				write = func(w io.Writer) error { return render.JSON(w, b) }
			default:
				return usagef("unknown export format %q (want html or json)", args[0])
			}

			if output == "" || output == "-" {
				return write(out(cmd))
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := write(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			return a.done(cmd, "Exported %d pins to %s", len(b.Pins), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&title, "title", "", "page title for html export")
	return cmd
}
