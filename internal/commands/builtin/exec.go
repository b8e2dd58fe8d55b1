package builtin

import (
	"fmt"
	"strings"

	"tilemux/internal/commands"
	"tilemux/internal/config"
	"tilemux/pkg/tiletypes"
)

// cmdExec spawns a program in the session environment. Runtime-scoped, so an
// initial config load defers it until the runtime comes up.
func cmdExec(cfg *config.Config, rt tiletypes.Runtime, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("exec expects a command")
	}
	command := cfg.Symbols.Replace(strings.Join(args, " "))
	return rt.Exec(command)
}

// cmdExecAlways is exec that also re-runs on reload. The distinction matters
// to the session controller; execution is identical.
func cmdExecAlways(cfg *config.Config, rt tiletypes.Runtime, args []string) error {
	return cmdExec(cfg, rt, args)
}

func execHandlers() []commands.Handler {
	return []commands.Handler{
		{Name: "exec", Scope: tiletypes.ScopeRuntime, Run: cmdExec},
		{Name: "exec_always", Scope: tiletypes.ScopeRuntime, Run: cmdExecAlways},
		{Name: "workspace", Scope: tiletypes.ScopeRuntime, Run: cmdWorkspace},
	}
}
