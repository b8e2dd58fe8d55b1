package config

import "tilemux/internal/logger"

// DefaultModeName is the mode every Config starts in. It always exists and
// is never removed.
const DefaultModeName = "default"

// Binding associates a key combination with a directive string, scoped to
// the mode that contains it.
type Binding struct {
	Keys    []string
	Command string
}

// Mode is a named, mutually exclusive set of key bindings. Bindings keep
// declaration order.
type Mode struct {
	Name     string
	Bindings []*Binding
}

// AddBinding appends a binding to the mode.
func (m *Mode) AddBinding(b *Binding) {
	m.Bindings = append(m.Bindings, b)
}

// Mode returns the mode with the given name, or nil if none exists.
func (c *Config) Mode(name string) *Mode {
	for _, m := range c.Modes {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// EnterMode makes the named mode current, creating it if it does not exist
// yet. The returned mode is always a member of Modes.
func (c *Config) EnterMode(name string) *Mode {
	mode := c.Mode(name)
	if mode == nil {
		mode = &Mode{Name: name}
		c.Modes = append(c.Modes, mode)
	}
	c.CurrentMode = mode
	logger.Debug("Entering mode", "mode", name)
	return mode
}

// ResetMode returns the current-mode pointer to the default mode. Used when
// the parser sees the closing brace of a mode block.
func (c *Config) ResetMode() {
	c.CurrentMode = c.Mode(DefaultModeName)
}
