package session

import (
	"fmt"

	"tilemux/internal/commands"
	"tilemux/internal/commands/builtin"
	"tilemux/internal/config"
	"tilemux/internal/logger"
	"tilemux/pkg/tiletypes"
)

// Controller ties the config manager, the handler registry and the runtime
// together for one session.
type Controller struct {
	manager  *config.Manager
	registry *commands.Registry
	runtime  tiletypes.Runtime
}

// NewController builds a controller around the given runtime with all
// builtin handlers registered.
func NewController(rt tiletypes.Runtime) (*Controller, error) {
	registry := commands.NewRegistry(rt)
	if err := builtin.RegisterAll(registry); err != nil {
		return nil, fmt.Errorf("installing builtin handlers: %w", err)
	}
	return &Controller{
		manager:  config.NewManager(registry, rt),
		registry: registry,
		runtime:  rt,
	}, nil
}

// Manager exposes the config manager, mainly for inspection commands.
func (c *Controller) Manager() *config.Manager {
	return c.manager
}

// Startup performs the initial config load. An empty path walks the search
// list.
func (c *Controller) Startup(path string) (config.Result, error) {
	return c.manager.LoadConfig(path)
}

// Reload re-reads the config. Because a live store exists by now, deferred
// classification is skipped and runtime commands execute immediately.
func (c *Controller) Reload(path string) (config.Result, error) {
	return c.manager.LoadConfig(path)
}

// RuntimeReady marks the live store active and executes the directives that
// were deferred during the initial parse, in source order. Failures are
// logged and recorded on the store without stopping the drain.
func (c *Controller) RuntimeReady() {
	cfg := c.manager.Current()
	if cfg == nil {
		return
	}
	cfg.Active = true
	for _, line := range cfg.TakeQueued() {
		logger.Debug("Running deferred command", "line", line)
		if err := c.registry.HandleCommand(cfg, line); err != nil {
			logger.Error("Deferred command failed", "line", line, "error", err)
			cfg.Failed = true
		}
	}
}
