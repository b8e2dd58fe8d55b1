// Package builtin registers the standard tilemux directive handlers:
// variable definitions, key bindings, mode blocks, workspace and output
// configuration, appearance toggles, and the runtime-scoped commands that
// are deferred or rejected during config parsing.
package builtin

import (
	"fmt"
	"strings"

	"tilemux/internal/commands"
)

// RegisterAll installs every builtin handler into the registry.
func RegisterAll(r *commands.Registry) error {
	for _, h := range handlers() {
		if err := r.Register(h); err != nil {
			return fmt.Errorf("registering builtin %s: %w", h.Name, err)
		}
	}
	return nil
}

func handlers() []commands.Handler {
	var all []commands.Handler
	all = append(all, configHandlers()...)
	all = append(all, execHandlers()...)
	all = append(all, keybindHandlers()...)
	return all
}

// trimQuotes removes one layer of surrounding double quotes, used for mode
// and workspace names.
func trimQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// parseSwitch interprets yes/no style directive arguments.
func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "yes", "on", "enable", "true", "1":
		return true, nil
	case "no", "off", "disable", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes or no, got %q", arg)
	}
}
