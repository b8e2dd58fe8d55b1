package config

import (
	"bufio"
	"io"
	"strings"

	"tilemux/internal/logger"
	"tilemux/pkg/tiletypes"
)

// Dispatcher is the command-handler registry the parser routes directives
// through. FindHandler classifies a directive by its leading token;
// HandleCommand executes one directive against the given store.
type Dispatcher interface {
	FindHandler(name string) (tiletypes.Scope, bool)
	HandleCommand(cfg *Config, line string) error
}

// Diagnostic records one rejected or failed directive from a parse pass.
type Diagnostic struct {
	Line    int
	Text    string
	Message string
}

// Result accumulates the outcome of a parse pass. OK follows the original
// aggregate contract: it only turns false when a handler reports failure for
// a line; unknown or misplaced directives are logged and recorded as
// diagnostics without failing the pass.
type Result struct {
	OK          bool
	Diagnostics []Diagnostic
}

func (r *Result) add(line int, text, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Line: line, Text: text, Message: message})
}

// normalizeLine strips surrounding whitespace and cuts the line at the first
// comment character. Stripping is not quote-aware; a "#" inside a quoted
// string still starts a comment, matching the original behavior.
func normalizeLine(raw string) string {
	line, _, _ := strings.Cut(raw, "#")
	return strings.TrimSpace(line)
}

// parse runs one best-effort pass over src, normalizing and routing every
// line. A line that normalizes to empty is skipped; a line starting with the
// mode-closing brace resets the current mode. Everything else is classified
// by its leading token and executed, deferred, or rejected. Failures never
// abort the pass.
func parse(d Dispatcher, cfg *Config, src io.Reader) Result {
	res := Result{OK: true}
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := normalizeLine(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '}' {
			cfg.ResetMode()
			continue
		}

		args := strings.Fields(line)
		scope, found := d.FindHandler(args[0])
		if !found {
			logger.Error("Invalid command", "line", line)
			res.add(lineNo, line, "invalid command")
			continue
		}
		logger.CommandDispatch(args[0], args[1:])

		switch {
		case scope == tiletypes.ScopeKeybind:
			logger.Error("Invalid command during config", "line", line)
			res.add(lineNo, line, "invalid command during config")
		case scope == tiletypes.ScopeRuntime && !cfg.Active:
			// Commands that need the compositor runtime are queued
			// for execution after it comes up
			logger.Debug("Deferring command", "line", line)
			cfg.QueueCommand(line)
		default:
			if err := d.HandleCommand(cfg, line); err != nil {
				logger.Debug("Config load failed for line", "line", line, "error", err)
				cfg.Failed = true
				res.OK = false
				res.add(lineNo, line, err.Error())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Config read failed", "error", err)
		cfg.Failed = true
		res.OK = false
		res.add(lineNo, "", err.Error())
	}
	return res
}
