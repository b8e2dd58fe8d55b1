// Package session wires the configuration subsystem to the session runtime:
// it owns the config manager, drains deferred directives once the runtime is
// up, and provides the default Runtime implementation.
package session

import (
	"fmt"
	"os/exec"
	"sync"

	"tilemux/internal/logger"
)

// ProcessRuntime is the default Runtime: input init is tracked once per
// process, arrangement requests are forwarded to the layout engine hook, and
// exec spawns detached processes through the shell.
type ProcessRuntime struct {
	inputOnce sync.Once

	// Arrange is the layout-engine hook invoked by ArrangeWindows. Left
	// nil, arrangement requests are logged and dropped, which is what the
	// headless check mode wants.
	Arrange func(width, height int)
}

// NewProcessRuntime creates a ProcessRuntime with no layout engine attached.
func NewProcessRuntime() *ProcessRuntime {
	return &ProcessRuntime{}
}

// InputInit initializes the input subsystem. Idempotent.
func (r *ProcessRuntime) InputInit() {
	r.inputOnce.Do(func() {
		logger.Debug("Initializing input subsystem")
	})
}

// ArrangeWindows forwards a full-tree layout recompute to the engine hook.
func (r *ProcessRuntime) ArrangeWindows(width, height int) {
	if r.Arrange == nil {
		logger.Debug("Arrange requested with no layout engine attached", "width", width, "height", height)
		return
	}
	r.Arrange(width, height)
}

// Exec starts command via `sh -c` without waiting for it.
func (r *ProcessRuntime) Exec(command string) error {
	if command == "" {
		return fmt.Errorf("empty exec command")
	}
	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("exec %q: %w", command, err)
	}
	logger.Debug("Spawned process", "command", command, "pid", cmd.Process.Pid)
	go func() { _ = cmd.Wait() }()
	return nil
}
