package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"tilemux/internal/logger"
	"tilemux/pkg/tiletypes"
)

// Manager owns the live Config and coordinates loads and reloads. It is the
// single writer of the live reference; readers go through Current. The lock
// guards the pointer swap only — store contents are written by the loading
// goroutine without synchronization, so loads and reloads must be driven
// from a single thread, the way the session runtime drives them.
type Manager struct {
	mu         sync.RWMutex
	current    *Config
	dispatcher Dispatcher
	runtime    tiletypes.Runtime
	log        *log.Logger
}

// NewManager creates a Manager with no live config yet.
func NewManager(d Dispatcher, rt tiletypes.Runtime) *Manager {
	return &Manager{
		dispatcher: d,
		runtime:    rt,
		log:        logger.NewStyledLogger("Reload"),
	}
}

// Current returns the live Config, or nil before the first load.
func (m *Manager) Current() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// LoadConfig resolves a config file (explicit path, or the search list when
// path is empty), initializes the input subsystem, and runs a full parse
// pass. It fails fast with an error when no file can be found or opened; in
// that case no store is built or swapped. A file that sits next to an "env"
// file gets that file's entries seeded into the variable table before
// parsing. The reload is treated as active when a live store already exists.
func (m *Manager) LoadConfig(path string) (Result, error) {
	m.log.Info("Loading config")

	m.runtime.InputInit()

	if path == "" {
		found, err := FindConfigPath()
		if err != nil {
			m.log.Error("Unable to find a config file")
			return Result{}, err
		}
		path = found
	}

	f, err := os.Open(path)
	if err != nil {
		m.log.Error("Unable to open config for reading", "path", path, "error", err)
		return Result{}, fmt.Errorf("unable to open %s for reading: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	seed := readEnvFile(envFilePath(path))
	isActive := m.Current() != nil
	return m.readConfig(f, isActive, seed), nil
}

// ReadConfig builds a fresh Config, parses src into it, and publishes it as
// the live store. The new store becomes live regardless of per-line
// failures; the previous store is dropped only after the swap, so a reader
// never observes a torn state. When isActive is set the store parses in
// reload mode and a full window re-arrangement is triggered on completion.
func (m *Manager) ReadConfig(src io.Reader, isActive bool) Result {
	return m.readConfig(src, isActive, nil)
}

func (m *Manager) readConfig(src io.Reader, isActive bool, seed []Variable) Result {
	cfg := New()
	if isActive {
		m.log.Debug("Performing configuration file reload", "generation", cfg.Generation)
		cfg.Reloading = true
		cfg.Active = true
	}
	for _, v := range seed {
		cfg.Symbols.Set(v.Name, v.Value)
	}

	res := parse(m.dispatcher, cfg, src)

	m.mu.Lock()
	old := m.current
	m.current = cfg
	m.mu.Unlock()

	if isActive {
		cfg.Reloading = false
		m.runtime.ArrangeWindows(-1, -1)
	}
	if old != nil {
		m.log.Debug("Dropping previous config", "generation", old.Generation)
	}

	return res
}

// readEnvFile loads a dotenv-style file into variable seeds, sorted by name
// for deterministic table order. A missing or malformed file seeds nothing.
func readEnvFile(path string) []Variable {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		logger.Warn("Ignoring malformed env file", "path", path, "error", err)
		return nil
	}
	names := make([]string, 0, len(envMap))
	for name := range envMap {
		names = append(names, name)
	}
	sort.Strings(names)
	seed := make([]Variable, 0, len(names))
	for _, name := range names {
		seed = append(seed, Variable{Name: name, Value: envMap[name]})
	}
	if len(seed) > 0 {
		logger.Debug("Seeded variables from env file", "path", path, "count", len(seed))
	}
	return seed
}
