package builtin

import (
	"fmt"
	"strconv"

	"tilemux/internal/config"
	"tilemux/pkg/tiletypes"
)

func cmdFocusFollowsMouse(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("focus_follows_mouse expects yes or no")
	}
	v, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	cfg.FocusFollowsMouse = v
	return nil
}

func cmdMouseWarping(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("mouse_warping expects yes or no")
	}
	v, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	cfg.MouseWarping = v
	return nil
}

func cmdAutoBackAndForth(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("workspace_auto_back_and_forth expects yes or no")
	}
	v, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	cfg.AutoBackAndForth = v
	return nil
}

// cmdFloatingModifier sets the modifier key that drags floating windows.
func cmdFloatingModifier(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("floating_modifier expects a modifier key")
	}
	mod := cfg.Symbols.Replace(args[0])
	if mod == "" {
		return fmt.Errorf("floating_modifier expects a modifier key")
	}
	cfg.FloatingMod = mod
	return nil
}

func cmdDefaultOrientation(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("default_orientation expects horizontal, vertical or auto")
	}
	switch args[0] {
	case "horizontal":
		cfg.DefaultOrientation = config.OrientationHorizontal
	case "vertical":
		cfg.DefaultOrientation = config.OrientationVertical
	case "auto":
		cfg.DefaultOrientation = config.OrientationAuto
	default:
		return fmt.Errorf("unknown orientation %q", args[0])
	}
	return nil
}

// cmdGaps sets gap sizes: gaps inner|outer <px>, or gaps <px> for both.
func cmdGaps(cfg *config.Config, _ tiletypes.Runtime, args []string) error {
	switch len(args) {
	case 1:
		px, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid gap size %q", args[0])
		}
		cfg.GapsInner = px
		cfg.GapsOuter = px
		return nil
	case 2:
		px, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid gap size %q", args[1])
		}
		switch args[0] {
		case "inner":
			cfg.GapsInner = px
		case "outer":
			cfg.GapsOuter = px
		default:
			return fmt.Errorf("gaps expects inner or outer, got %q", args[0])
		}
		return nil
	default:
		return fmt.Errorf("gaps expects [inner|outer] <px>")
	}
}
