package config

import (
	"strings"

	"tilemux/internal/logger"
)

// Variable is a user-defined name-to-text symbol. Names carry the leading
// substitution marker, so `set $term foo` stores the name "$term".
type Variable struct {
	Name  string
	Value string
}

// maxReplaceDepth bounds the total number of replacements in one Replace
// call, guarding against self-referential variable values.
const maxReplaceDepth = 64

// VariableTable holds the config's symbols in declaration order and performs
// textual substitution over directive text.
type VariableTable struct {
	vars []Variable
}

// NewVariableTable creates an empty variable table.
func NewVariableTable() *VariableTable {
	return &VariableTable{}
}

// Set defines a variable. Names without the leading marker are normalized to
// carry it. Redefining an existing name replaces its value in place, so the
// last definition wins while declaration order is preserved.
func (t *VariableTable) Set(name, value string) {
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	logger.VariableOperation("set", name, value)
	for i := range t.vars {
		if t.vars[i].Name == name {
			t.vars[i].Value = value
			return
		}
	}
	t.vars = append(t.vars, Variable{Name: name, Value: value})
}

// Get returns the value bound to name, which may be given with or without
// the leading marker.
func (t *VariableTable) Get(name string) (string, bool) {
	if !strings.HasPrefix(name, "$") {
		name = "$" + name
	}
	for _, v := range t.vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Variables returns a copy of the table in declaration order.
func (t *VariableTable) Variables() []Variable {
	out := make([]Variable, len(t.vars))
	copy(out, t.vars)
	return out
}

// Len returns the number of defined variables.
func (t *VariableTable) Len() int {
	return len(t.vars)
}

// Replace substitutes variables into s. At each marker position the table is
// scanned in declaration order for a name that prefix-matches the remaining
// text; after a replacement the scan restarts from the head of the table at
// the same position, bounded by maxReplaceDepth, so values that expand to
// further variable references compound. A doubled marker ("$$") escapes to a
// literal "$". Markers with no matching variable are left untouched.
func (t *VariableTable) Replace(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	str := s
	i := 0
	depth := 0
	for i < len(str) {
		if str[i] != '$' {
			i++
			continue
		}
		if i+1 < len(str) && str[i+1] == '$' {
			// Escape: collapse to a literal marker and skip past it
			str = str[:i] + str[i+1:]
			i++
			continue
		}
		for depth < maxReplaceDepth {
			matched := false
			for _, v := range t.vars {
				if strings.HasPrefix(str[i:], v.Name) {
					str = str[:i] + v.Value + str[i+len(v.Name):]
					matched = true
					depth++
					break
				}
			}
			if !matched {
				break
			}
		}
		i++
	}
	if str != s {
		logger.SubstitutionStep(s, str)
	}
	return str
}
