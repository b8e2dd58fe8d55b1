package builtin

import (
	"fmt"
	"strings"

	"tilemux/internal/config"
	"tilemux/pkg/tiletypes"
)

// cmdSet defines a variable: set $name value...
func cmdSet(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set expects a name and a value")
	}
	name := args[0]
	if !strings.HasPrefix(name, "$") {
		return fmt.Errorf("variable %q must start with $", name)
	}
	cfg.Symbols.Set(name, strings.Join(args[1:], " "))
	return nil
}
