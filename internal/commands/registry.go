// Package commands provides the directive-handler registry for tilemux.
// The config parser classifies each directive through the registry and
// executes it against the in-progress configuration store.
package commands

import (
	"fmt"
	"strings"
	"sync"

	"tilemux/internal/config"
	"tilemux/pkg/tiletypes"
)

// HandlerFunc executes one directive against a configuration store. The
// leading token has already been stripped from args.
type HandlerFunc func(cfg *config.Config, rt tiletypes.Runtime, args []string) error

// Handler binds a directive name to its scope classification and
// implementation.
type Handler struct {
	Name  string
	Scope tiletypes.Scope
	Run   HandlerFunc
}

// Registry manages handler registration and lookup. It provides thread-safe
// registration and retrieval of handlers by directive name, and implements
// config.Dispatcher.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	runtime  tiletypes.Runtime
}

// NewRegistry creates an empty registry bound to the given runtime.
func NewRegistry(rt tiletypes.Runtime) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		runtime:  rt,
	}
}

// Register adds a handler to the registry. Returns an error if the handler
// name is empty or if a handler with the same name is already registered.
func (r *Registry) Register(h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.Name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if _, exists := r.handlers[h.Name]; exists {
		return fmt.Errorf("handler %s already registered", h.Name)
	}

	r.handlers[h.Name] = h
	return nil
}

// Get retrieves a handler by name. Returns the handler and true if found.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, exists := r.handlers[name]
	return h, exists
}

// FindHandler classifies a directive by its leading token.
func (r *Registry) FindHandler(name string) (tiletypes.Scope, bool) {
	h, exists := r.Get(name)
	return h.Scope, exists
}

// HandleCommand executes one normalized directive line against cfg. Returns
// an error if the leading token is unknown or the handler fails.
func (r *Registry) HandleCommand(cfg *config.Config, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return fmt.Errorf("empty command")
	}
	h, exists := r.Get(args[0])
	if !exists {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return h.Run(cfg, r.runtime, args[1:])
}
