package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("# config\n"), 0644))
}

// unsetEnv removes key for the duration of the test. t.Setenv registers the
// restore before the variable is unset.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestFindConfigPath_HomeSwayWins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", "")

	writeFile(t, filepath.Join(home, ".sway/config"))
	writeFile(t, filepath.Join(home, ".i3/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sway/config"), path)
}

func TestFindConfigPath_FallsBackToI3(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", "")

	// Only ~/.i3/config exists; every higher-priority candidate is absent
	writeFile(t, filepath.Join(home, ".i3/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".i3/config"), path)
}

func TestFindConfigPath_XDGConfigHome(t *testing.T) {
	home := t.TempDir()
	confHome := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", confHome)
	t.Setenv("XDG_CONFIG_DIRS", "")

	writeFile(t, filepath.Join(confHome, "sway/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(confHome, "sway/config"), path)
}

func TestFindConfigPath_XDGConfigDirs(t *testing.T) {
	home := t.TempDir()
	dirA := t.TempDir()
	dirB := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", dirA+":"+dirB)

	writeFile(t, filepath.Join(dirB, "sway/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirB, "sway/config"), path)
}

func TestFindConfigPath_XDGConfigDirsOrder(t *testing.T) {
	home := t.TempDir()
	dirA := t.TempDir()
	dirB := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", dirA+":"+dirB)

	writeFile(t, filepath.Join(dirA, "sway/config"))
	writeFile(t, filepath.Join(dirB, "sway/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dirA, "sway/config"), path)
}

func TestFindConfigPath_UnsetXDGConfigHomeDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", "")

	writeFile(t, filepath.Join(home, ".config/sway/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/sway/config"), path)
}

func TestFindConfigPath_EmptyXDGConfigHomeKeepsEmptyPrefix(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	// Set but empty must not fall back to $HOME/.config
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")

	writeFile(t, filepath.Join(home, ".config/sway/config"))
	writeFile(t, filepath.Join(home, ".i3/config"))

	path, err := FindConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".i3/config"), path)
}

func TestFindConfigPath_NotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	unsetEnv(t, "XDG_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_DIRS", "")

	_, err := FindConfigPath()
	assert.ErrorIs(t, err, ErrNoConfigFile)
}
