package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilemux/internal/config"
	"tilemux/internal/testutils"
)

const startupConfig = `# session config
set $mod Mod4
set $term alacritty

bindsym $mod+Return exec $term

exec swaybg -i wall.png
workspace 1 output DP-1
exec_always waybar

mode "resize" {
    bindsym j resize shrink width
}
`

func newControllerWithConfig(t *testing.T, content string) (*Controller, *testutils.FakeRuntime, string) {
	t.Helper()
	rt := testutils.NewFakeRuntime()
	c, err := NewController(rt)
	require.NoError(t, err)
	path := testutils.WriteConfigFile(t, t.TempDir(), "config", content)
	return c, rt, path
}

func TestController_StartupDefersRuntimeCommands(t *testing.T) {
	c, rt, path := newControllerWithConfig(t, startupConfig)

	res, err := c.Startup(path)
	require.NoError(t, err)
	assert.True(t, res.OK)

	cfg := c.Manager().Current()
	require.NotNil(t, cfg)
	assert.Equal(t, 1, rt.InputInitCalls)
	assert.Empty(t, rt.ExecCommands)
	assert.Equal(t, []string{
		"exec swaybg -i wall.png",
		"workspace 1 output DP-1",
		"exec_always waybar",
	}, cfg.QueuedCommands())

	// Config-scope directives ran during the pass
	value, ok := cfg.Symbols.Get("$term")
	require.True(t, ok)
	assert.Equal(t, "alacritty", value)
	require.Len(t, cfg.Mode(config.DefaultModeName).Bindings, 1)
	assert.Equal(t, "exec alacritty", cfg.Mode(config.DefaultModeName).Bindings[0].Command)
	require.NotNil(t, cfg.Mode("resize"))
	assert.Equal(t, config.DefaultModeName, cfg.CurrentMode.Name)
}

func TestController_RuntimeReadyDrainsInOrder(t *testing.T) {
	c, rt, path := newControllerWithConfig(t, startupConfig)

	_, err := c.Startup(path)
	require.NoError(t, err)

	c.RuntimeReady()

	cfg := c.Manager().Current()
	assert.True(t, cfg.Active)
	assert.Empty(t, cfg.QueuedCommands())
	assert.Equal(t, []string{"swaybg -i wall.png", "waybar"}, rt.ExecCommands)
	assert.Equal(t, []config.WorkspaceOutput{{Workspace: "1", Output: "DP-1"}}, cfg.WorkspaceOutputs)
	assert.False(t, cfg.Failed)
}

func TestController_RuntimeReadyWithoutStoreIsNoop(t *testing.T) {
	rt := testutils.NewFakeRuntime()
	c, err := NewController(rt)
	require.NoError(t, err)

	c.RuntimeReady()
	assert.Empty(t, rt.ExecCommands)
}

func TestController_ReloadRunsImmediately(t *testing.T) {
	c, rt, path := newControllerWithConfig(t, startupConfig)

	_, err := c.Startup(path)
	require.NoError(t, err)
	c.RuntimeReady()
	execsAfterStartup := len(rt.ExecCommands)

	res, err := c.Reload(path)
	require.NoError(t, err)
	assert.True(t, res.OK)

	cfg := c.Manager().Current()
	assert.True(t, cfg.Active)
	assert.False(t, cfg.Reloading)
	// Runtime commands execute during an active reload instead of queuing
	assert.Empty(t, cfg.QueuedCommands())
	assert.Greater(t, len(rt.ExecCommands), execsAfterStartup)
	assert.Len(t, rt.ArrangeCalls, 1)
}

func TestController_KeybindDirectiveRejectedFromConfig(t *testing.T) {
	c, _, path := newControllerWithConfig(t, "focus left\nset $mod Mod4\n")

	res, err := c.Startup(path)
	require.NoError(t, err)

	// Rejection is best-effort: the pass succeeds, the directive is recorded
	assert.True(t, res.OK)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "invalid command during config", res.Diagnostics[0].Message)
	assert.False(t, c.Manager().Current().Failed)
}

func TestController_BadDirectiveFailsLoadButKeepsStore(t *testing.T) {
	c, _, path := newControllerWithConfig(t, "gaps inner ten\nset $mod Mod4\n")

	res, err := c.Startup(path)
	require.NoError(t, err)

	assert.False(t, res.OK)
	cfg := c.Manager().Current()
	require.NotNil(t, cfg)
	assert.True(t, cfg.Failed)
	// Later lines still parsed
	_, ok := cfg.Symbols.Get("$mod")
	assert.True(t, ok)
}
