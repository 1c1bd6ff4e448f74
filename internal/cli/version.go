package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/corkboard"
)

const modulePath = "github.com/mesh-intelligence/corkboard"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the corkboard version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoBoard: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "corkboard v%s\nmodule: %s\n", corkboard.Version, modulePath)
			return nil
		},
	}
}
