package builtin

import (
	"fmt"
	"strings"

	"tilemux/internal/config"
	"tilemux/pkg/tiletypes"
)

// cmdBindsym adds a key binding to the current mode:
// bindsym <key>+<key>... <command...>
// Variables are substituted into each key token and into the bound command.
func cmdBindsym(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("bindsym expects a key combination and a command")
	}
	binding := &config.Binding{
		Command: cfg.Symbols.Replace(strings.Join(args[1:], " ")),
	}
	for _, key := range strings.Split(args[0], "+") {
		key = cfg.Symbols.Replace(key)
		if key == "" {
			return fmt.Errorf("empty key in combination %q", args[0])
		}
		binding.Keys = append(binding.Keys, key)
	}
	cfg.CurrentMode.AddBinding(binding)
	return nil
}

// cmdMode switches the current mode, creating it on first use:
// mode <name> [{]
// The parser handles the closing brace that ends the block.
func cmdMode(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("mode expects a mode name")
	}
	if args[len(args)-1] == "{" {
		args = args[:len(args)-1]
	}
	if len(args) == 0 {
		return fmt.Errorf("mode expects a mode name")
	}
	name := trimQuotes(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("mode name cannot be empty")
	}
	cfg.EnterMode(name)
	return nil
}
