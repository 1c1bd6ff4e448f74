package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/corkboard/internal/logging"
	"github.com/mesh-intelligence/corkboard/internal/paths"
	"github.com/mesh-intelligence/corkboard/pkg/store"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	var backend string
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Initialize corkboard storage",
		Long:        "Create the configuration and data directories, write a default config.yaml\nif none exists, then initialize the storage backend.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoBoard: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", defaultBackend, "storage backend written to a new config.yaml (memory, file, sqlite)")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, backend string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfgPath := paths.ConfigFile(configDir)
	created, err := writeConfigIfMissing(cfgPath, backend)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s, err := a.settings()
	if err != nil {
		return err
	}
	b, err := store.NewBackend(s.Config.Backend)
	if err != nil {
		return err
	}
	if err := b.Attach(s.Config); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	if err := b.Detach(); err != nil {
		return fmt.Errorf("finalize storage: %w", err)
	}

	if a.flags.jsonMode {
		return writeJSON(out(cmd), map[string]any{
			"config":         cfgPath,
			"config_created": created,
			"backend":        s.Config.Backend,
			"data_dir":       s.Config.DataDir,
		})
	}
	fmt.Fprintf(out(cmd), "Corkboard initialized (%s backend, data in %s)\n", s.Config.Backend, s.Config.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. Reports whether the file was written.
func writeConfigIfMissing(path, backend string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	cfg := configFile{
		Backend:         backend,
		HistoryCapacity: types.DefaultHistoryCapacity,
		LogLevel:        "warn",
		LogFormat:       logging.FormatText,
	}
	if err := (types.Config{Backend: backend}).Validate(); err != nil {
		return false, err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
