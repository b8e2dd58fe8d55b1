// Package config implements the tilemux configuration subsystem: locating
// the config file, parsing it line by line into directives, dispatching each
// directive to a command handler either immediately or deferred until the
// runtime is ready, and swapping the live configuration on reload.
package config

import (
	"github.com/google/uuid"
)

// Orientation selects how new containers are laid out.
type Orientation int

const (
	// OrientationAuto picks an orientation based on output geometry.
	OrientationAuto Orientation = iota
	// OrientationHorizontal lays containers out left to right.
	OrientationHorizontal
	// OrientationVertical lays containers out top to bottom.
	OrientationVertical
)

// WorkspaceOutput is a static assignment binding a logical workspace to a
// physical output.
type WorkspaceOutput struct {
	Workspace string
	Output    string
}

// OutputConfig holds display attributes declared for a named output.
type OutputConfig struct {
	Name    string
	Enabled bool
	Width   int
	Height  int
	X       int
	Y       int
}

// Config is the aggregate configuration store built by one parse pass.
// Exactly one Config is live at a time; the Manager owns the live reference
// and replaces it wholesale on reload.
type Config struct {
	// Generation identifies this store instance in logs across a reload.
	Generation string

	Symbols          *VariableTable
	Modes            []*Mode
	CurrentMode      *Mode
	WorkspaceOutputs []WorkspaceOutput
	OutputConfigs    []*OutputConfig

	FloatingMod        string
	DefaultOrientation Orientation

	FocusFollowsMouse bool
	MouseWarping      bool
	Reloading         bool
	Active            bool
	Failed            bool
	AutoBackAndForth  bool

	GapsInner int
	GapsOuter int

	cmdQueue []string
}

// New creates a Config with defaults: empty collections, one default mode
// with the current-mode pointer on it, focus-follows-mouse and mouse-warping
// enabled, everything else off.
func New() *Config {
	cfg := &Config{
		Generation:        uuid.New().String(),
		Symbols:           NewVariableTable(),
		FocusFollowsMouse: true,
		MouseWarping:      true,
	}
	def := &Mode{Name: DefaultModeName}
	cfg.Modes = []*Mode{def}
	cfg.CurrentMode = def
	return cfg
}

// QueueCommand appends a directive line to the deferred command queue. Only
// directives seen before the runtime became active land here.
func (c *Config) QueueCommand(line string) {
	c.cmdQueue = append(c.cmdQueue, line)
}

// QueuedCommands returns a copy of the deferred command queue in source order.
func (c *Config) QueuedCommands() []string {
	out := make([]string, len(c.cmdQueue))
	copy(out, c.cmdQueue)
	return out
}

// TakeQueued drains the deferred command queue, returning the directives in
// the order they occurred in the source file.
func (c *Config) TakeQueued() []string {
	queued := c.cmdQueue
	c.cmdQueue = nil
	return queued
}
