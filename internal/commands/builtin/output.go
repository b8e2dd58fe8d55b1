package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"tilemux/internal/config"
	"tilemux/internal/logger"
	"tilemux/pkg/tiletypes"
)

// cmdWorkspace handles workspace directives. The assignment form
// `workspace <name> output <output>` records a static assignment; the bare
// switching form needs the arrangement engine and is only acknowledged here.
// The handler is runtime-scoped, so during an initial load both forms are
// deferred until the runtime is up, matching the original behavior.
func cmdWorkspace(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("workspace expects a workspace name")
	}
	if len(args) >= 3 && args[1] == "output" {
		cfg.WorkspaceOutputs = append(cfg.WorkspaceOutputs, config.WorkspaceOutput{
			Workspace: trimQuotes(args[0]),
			Output:    args[2],
		})
		return nil
	}
	// Switching is delegated to the arrangement engine
	logger.Debug("Workspace switch requested", "workspace", trimQuotes(strings.Join(args, " ")))
	return nil
}

// cmdOutput records display attributes for a named output:
// output <name> disable | [resolution WxH] [position X Y]
func cmdOutput(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("output expects an output name")
	}
	oc := &config.OutputConfig{Name: args[0], Enabled: true}
	rest := args[1:]
	for len(rest) > 0 {
		switch rest[0] {
		case "disable":
			oc.Enabled = false
			rest = rest[1:]
		case "resolution", "res":
			if len(rest) < 2 {
				return fmt.Errorf("output %s: resolution expects WxH", oc.Name)
			}
			w, h, err := parseResolution(rest[1])
			if err != nil {
				return fmt.Errorf("output %s: %w", oc.Name, err)
			}
			oc.Width, oc.Height = w, h
			rest = rest[2:]
		case "position", "pos":
			if len(rest) < 3 {
				return fmt.Errorf("output %s: position expects X Y", oc.Name)
			}
			x, errX := strconv.Atoi(rest[1])
			y, errY := strconv.Atoi(rest[2])
			if errX != nil || errY != nil {
				return fmt.Errorf("output %s: invalid position %s %s", oc.Name, rest[1], rest[2])
			}
			oc.X, oc.Y = x, y
			rest = rest[3:]
		default:
			return fmt.Errorf("output %s: unknown attribute %q", oc.Name, rest[0])
		}
	}
	cfg.OutputConfigs = append(cfg.OutputConfigs, oc)
	return nil
}

func parseResolution(arg string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(arg), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid resolution %q", arg)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("invalid resolution %q", arg)
	}
	return width, height, nil
}
