package builtin

import (
	"tilemux/internal/commands"
	"tilemux/internal/config"
	"tilemux/internal/logger"
	"tilemux/pkg/tiletypes"
)

// keybindHandlers are the directives only valid when fired from a key
// binding; the parser rejects them in config files. At runtime they delegate
// to the arrangement engine, which lives outside this subsystem, so the
// stubs only acknowledge the request.
func keybindHandlers() []commands.Handler {
	ack := func(name string) commands.HandlerFunc {
		return func(_ *config.Config, _ tiletypes.Runtime, args []string) error {
			logger.Debug("Runtime command", "command", name, "args", args)
			return nil
		}
	}
	names := []string{"focus", "move", "kill", "fullscreen", "reload", "splith", "splitv"}
	handlers := make([]commands.Handler, 0, len(names))
	for _, name := range names {
		handlers = append(handlers, commands.Handler{
			Name:  name,
			Scope: tiletypes.ScopeKeybind,
			Run:   ack(name),
		})
	}
	return handlers
}
