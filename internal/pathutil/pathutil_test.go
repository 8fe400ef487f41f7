package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) (configHome, dataHome string) {
	t.Helper()

	configHome = filepath.Join(t.TempDir(), "config")
	dataHome = filepath.Join(t.TempDir(), "data")

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	xdg.Reload()

	t.Cleanup(xdg.Reload)

	return configHome, dataHome
}

func TestResolve(t *testing.T) {
	configHome, dataHome := withHome(t)

	p, err := Resolve("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "exerun", "config.yml"), p.Config)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "exerun.db"), p.DB)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "status.json"), p.Status)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "log", "exerun.log"), p.Log)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "sounds"), p.Sounds)
}

func TestResolveEnvironment(t *testing.T) {
	configHome, dataHome := withHome(t)

	p, err := Resolve(" dev ")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configHome, "exerun", "config_dev.yml"), p.Config)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "exerun_dev.db"), p.DB)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "status_dev.json"), p.Status)
	assert.Equal(t, filepath.Join(dataHome, "exerun", "sounds"), p.Sounds)
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "bell", StripExtension("bell.ogg"))
	assert.Equal(t, "clap.v2", StripExtension("clap.v2.wav"))
	assert.Equal(t, "airhorn", StripExtension("airhorn"))
}
