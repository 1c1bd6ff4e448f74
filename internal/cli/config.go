package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/corkboard/internal/logging"
	"github.com/mesh-intelligence/corkboard/internal/paths"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys in config.yaml.
	cfgKeyBackend         = "backend"
	cfgKeyDataDir         = "data_dir"
	cfgKeyHistoryCapacity = "history_capacity"
	cfgKeyLogLevel        = "log_level"
	cfgKeyLogFormat       = "log_format"

	defaultBackend = types.BackendSQLite
)

// settings is config.yaml resolved against its defaults.
type settings struct {
	Config    types.Config
	LogLevel  string
	LogFormat string
}

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend         string `yaml:"backend"`
	DataDir         string `yaml:"data_dir,omitempty"`
	HistoryCapacity int    `yaml:"history_capacity"`
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
}

// newViper returns a viper instance with corkboard defaults that reads
// config.yaml from configDir. Values can also come from CORKBOARD_* env vars.
func newViper(configDir string) *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyHistoryCapacity, types.DefaultHistoryCapacity)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, logging.FormatText)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("corkboard")
	for _, key := range []string{cfgKeyBackend, cfgKeyHistoryCapacity, cfgKeyLogLevel, cfgKeyLogFormat} {
		_ = v.BindEnv(key)
	}
	return v
}

// loadSettings reads config.yaml from configDir. A missing config.yaml is not
// an error; defaults apply.
func loadSettings(configDir string) (settings, error) {
	v := newViper(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := settings{
		Config: types.Config{
			Backend:         v.GetString(cfgKeyBackend),
			DataDir:         v.GetString(cfgKeyDataDir),
			HistoryCapacity: v.GetInt(cfgKeyHistoryCapacity),
		},
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
	}
	if err := s.Config.Validate(); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", paths.ConfigFile(configDir), err)
	}
	return s, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}
