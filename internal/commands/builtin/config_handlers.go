package builtin

import (
	"tilemux/internal/commands"
	"tilemux/pkg/tiletypes"
)

// configHandlers are the directives valid anywhere, including config files.
func configHandlers() []commands.Handler {
	return []commands.Handler{
		{Name: "set", Scope: tiletypes.ScopeConfig, Run: cmdSet},
		{Name: "bindsym", Scope: tiletypes.ScopeConfig, Run: cmdBindsym},
		{Name: "mode", Scope: tiletypes.ScopeConfig, Run: cmdMode},
		{Name: "output", Scope: tiletypes.ScopeConfig, Run: cmdOutput},
		{Name: "gaps", Scope: tiletypes.ScopeConfig, Run: cmdGaps},
		{Name: "focus_follows_mouse", Scope: tiletypes.ScopeConfig, Run: cmdFocusFollowsMouse},
		{Name: "mouse_warping", Scope: tiletypes.ScopeConfig, Run: cmdMouseWarping},
		{Name: "workspace_auto_back_and_forth", Scope: tiletypes.ScopeConfig, Run: cmdAutoBackAndForth},
		{Name: "floating_modifier", Scope: tiletypes.ScopeConfig, Run: cmdFloatingModifier},
		{Name: "default_orientation", Scope: tiletypes.ScopeConfig, Run: cmdDefaultOrientation},
	}
}
