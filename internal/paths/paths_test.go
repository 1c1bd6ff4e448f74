package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/corkboard", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "corkboard"), got)
	})
}

func TestDefaultDataDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/corkboard", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "corkboard"), got)
	})
}

func TestDefaultDirs_HomeError(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}
	orig := platformDir.homeDir
	t.Cleanup(func() { platformDir.homeDir = orig })
	platformDir.homeDir = func() (string, error) { return "", errors.New("no home") }

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	_, err := DefaultConfigDir()
	assert.Error(t, err)
	_, err = DefaultDataDir()
	assert.Error(t, err)
}

func TestResolveConfigDir(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{"flag wins over env", filepath.Join(tmp, "flag"), filepath.Join(tmp, "env"), filepath.Join(tmp, "flag")},
		{"env when no flag", "", filepath.Join(tmp, "env"), filepath.Join(tmp, "env")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("default when nothing set", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		want, err := DefaultConfigDir()
		require.NoError(t, err)
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestResolveDataDir(t *testing.T) {
	tmp := t.TempDir()
	flag := filepath.Join(tmp, "flag")
	env := filepath.Join(tmp, "env")
	cfg := filepath.Join(tmp, "cfg")

	tests := []struct {
		name string
		flag string
		env  string
		cfg  string
		want string
	}{
		{"flag first", flag, env, cfg, flag},
		{"env over config", "", env, cfg, env},
		{"config value", "", "", cfg, cfg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)
			got, err := ResolveDataDir(tt.flag, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative paths become absolute", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		got, err := ResolveDataDir("rel", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})

	t.Run("default when nothing set", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		want, err := DefaultDataDir()
		require.NoError(t, err)
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "config.yaml"), ConfigFile("dir"))
}
