// Package testutils provides shared fakes and helpers for tilemux tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tilemux/pkg/tiletypes"
)

// FakeRuntime records every runtime call for assertions.
type FakeRuntime struct {
	InputInitCalls int
	ArrangeCalls   [][2]int
	ExecCommands   []string
	ExecErr        error
}

// NewFakeRuntime creates an empty FakeRuntime.
func NewFakeRuntime() *FakeRuntime {
	return &FakeRuntime{}
}

// InputInit records the call.
func (r *FakeRuntime) InputInit() {
	r.InputInitCalls++
}

// ArrangeWindows records the requested dimensions.
func (r *FakeRuntime) ArrangeWindows(width, height int) {
	r.ArrangeCalls = append(r.ArrangeCalls, [2]int{width, height})
}

// Exec records the command and returns the configured error.
func (r *FakeRuntime) Exec(command string) error {
	r.ExecCommands = append(r.ExecCommands, command)
	return r.ExecErr
}

var _ tiletypes.Runtime = (*FakeRuntime)(nil)

// WriteConfigFile writes content to dir/name and returns the full path.
func WriteConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
