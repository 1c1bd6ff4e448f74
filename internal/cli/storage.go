package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type storageOut struct {
	Backend string          `json:"backend"`
	DataDir string          `json:"data_dir"`
	Keys    []storageKeyOut `json:"keys"`
}

type storageKeyOut struct {
	Key   string `json:"key"`
	Bytes int    `json:"bytes"`
}

func newStorageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "List the keys held by the storage backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := a.board.Backend()
			keys, err := backend.Keys()
			if err != nil {
				return fmt.Errorf("list keys: %w", err)
			}
			o := storageOut{Backend: a.cfg.Backend, DataDir: a.cfg.DataDir, Keys: make([]storageKeyOut, 0, len(keys))}
			for _, k := range keys {
				data, _, err := backend.Get(k)
				if err != nil {
					return fmt.Errorf("read %s: %w", k, err)
				}
				o.Keys = append(o.Keys, storageKeyOut{Key: k, Bytes: len(data)})
			}

			if a.flags.jsonMode {
				return writeJSON(out(cmd), o)
			}
			w := out(cmd)
			fmt.Fprintf(w, "%s backend in %s\n", o.Backend, o.DataDir)
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tBYTES")
			for _, k := range o.Keys {
				fmt.Fprintf(tw, "%s\t%d\n", k.Key, k.Bytes)
			}
			return tw.Flush()
		},
	}
}
