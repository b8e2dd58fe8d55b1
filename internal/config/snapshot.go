package config

import "gopkg.in/yaml.v3"

// Snapshot is a serializable view of a Config, used by `tilemux check` to
// report what a parse pass produced.
type Snapshot struct {
	Generation       string             `yaml:"generation"`
	Variables        []VariableSnapshot `yaml:"variables,omitempty"`
	Modes            []ModeSnapshot     `yaml:"modes"`
	CurrentMode      string             `yaml:"current_mode"`
	WorkspaceOutputs []WorkspaceOutput  `yaml:"workspace_outputs,omitempty"`
	OutputConfigs    []*OutputConfig    `yaml:"output_configs,omitempty"`
	Deferred         []string           `yaml:"deferred,omitempty"`
	Flags            FlagsSnapshot      `yaml:"flags"`
	GapsInner        int                `yaml:"gaps_inner"`
	GapsOuter        int                `yaml:"gaps_outer"`
}

// VariableSnapshot is one symbol table entry.
type VariableSnapshot struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ModeSnapshot is one mode and its bindings.
type ModeSnapshot struct {
	Name     string            `yaml:"name"`
	Bindings []BindingSnapshot `yaml:"bindings,omitempty"`
}

// BindingSnapshot is one key binding.
type BindingSnapshot struct {
	Keys    []string `yaml:"keys"`
	Command string   `yaml:"command"`
}

// FlagsSnapshot mirrors the Config status flags.
type FlagsSnapshot struct {
	FocusFollowsMouse bool `yaml:"focus_follows_mouse"`
	MouseWarping      bool `yaml:"mouse_warping"`
	Active            bool `yaml:"active"`
	Failed            bool `yaml:"failed"`
	AutoBackAndForth  bool `yaml:"auto_back_and_forth"`
}

// Snapshot captures the store's current state.
func (c *Config) Snapshot() Snapshot {
	snap := Snapshot{
		Generation:       c.Generation,
		CurrentMode:      c.CurrentMode.Name,
		WorkspaceOutputs: c.WorkspaceOutputs,
		OutputConfigs:    c.OutputConfigs,
		Deferred:         c.QueuedCommands(),
		GapsInner:        c.GapsInner,
		GapsOuter:        c.GapsOuter,
		Flags: FlagsSnapshot{
			FocusFollowsMouse: c.FocusFollowsMouse,
			MouseWarping:      c.MouseWarping,
			Active:            c.Active,
			Failed:            c.Failed,
			AutoBackAndForth:  c.AutoBackAndForth,
		},
	}
	for _, v := range c.Symbols.Variables() {
		snap.Variables = append(snap.Variables, VariableSnapshot{Name: v.Name, Value: v.Value})
	}
	for _, m := range c.Modes {
		ms := ModeSnapshot{Name: m.Name}
		for _, b := range m.Bindings {
			ms.Bindings = append(ms.Bindings, BindingSnapshot{Keys: b.Keys, Command: b.Command})
		}
		snap.Modes = append(snap.Modes, ms)
	}
	return snap
}

// RenderYAML renders the snapshot of the store as YAML.
func (c *Config) RenderYAML() ([]byte, error) {
	return yaml.Marshal(c.Snapshot())
}
