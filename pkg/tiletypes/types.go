// Package tiletypes provides shared types used across tilemux packages.
// It defines the command-handler classification scopes and the narrow
// runtime interface the configuration subsystem depends on.
package tiletypes

// Scope classifies a command handler by where it may legally run.
type Scope int

const (
	// ScopeConfig marks commands valid anywhere, including config files.
	ScopeConfig Scope = iota
	// ScopeKeybind marks commands that may only run when triggered by a
	// key binding; they are rejected during config parsing.
	ScopeKeybind
	// ScopeRuntime marks commands that need the compositor runtime to be
	// initialized; during a pre-runtime parse they are deferred.
	ScopeRuntime
)

// String returns a human-readable name for the scope.
func (s Scope) String() string {
	switch s {
	case ScopeConfig:
		return "config"
	case ScopeKeybind:
		return "keybind"
	case ScopeRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Runtime is the narrow interface to the session runtime consumed by the
// configuration subsystem. The window arrangement engine and the input
// subsystem live behind it.
type Runtime interface {
	// InputInit initializes the input subsystem. Called once at the start
	// of every config load; implementations must be idempotent.
	InputInit()

	// ArrangeWindows recomputes the layout of the whole window tree.
	// Width and height of -1 mean "keep current dimensions".
	ArrangeWindows(width, height int)

	// Exec spawns an external command in the session environment.
	Exec(command string) error
}
