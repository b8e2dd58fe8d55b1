package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableTable_SetAndGet(t *testing.T) {
	table := NewVariableTable()
	table.Set("$term", "alacritty")

	value, ok := table.Get("$term")
	require.True(t, ok)
	assert.Equal(t, "alacritty", value)

	// Lookup without the marker is normalized
	value, ok = table.Get("term")
	require.True(t, ok)
	assert.Equal(t, "alacritty", value)

	_, ok = table.Get("$missing")
	assert.False(t, ok)
}

func TestVariableTable_LastDefinitionWins(t *testing.T) {
	table := NewVariableTable()
	table.Set("$mod", "Mod1")
	table.Set("$term", "urxvt")
	table.Set("$mod", "Mod4")

	value, ok := table.Get("$mod")
	require.True(t, ok)
	assert.Equal(t, "Mod4", value)

	// Redefinition keeps declaration order
	vars := table.Variables()
	require.Len(t, vars, 2)
	assert.Equal(t, "$mod", vars[0].Name)
	assert.Equal(t, "$term", vars[1].Name)
}

func TestVariableTable_SetNormalizesMarker(t *testing.T) {
	table := NewVariableTable()
	table.Set("browser", "firefox")

	vars := table.Variables()
	require.Len(t, vars, 1)
	assert.Equal(t, "$browser", vars[0].Name)
}

func TestReplace_NoMarkerIsIdentity(t *testing.T) {
	table := NewVariableTable()
	table.Set("$foo", "BAR")

	tests := []string{
		"plain text",
		"exec alacritty",
		"",
		"workspace 1 output DP-1",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, text, table.Replace(text))
		})
	}
}

func TestReplace_SimpleSubstitution(t *testing.T) {
	table := NewVariableTable()
	table.Set("$foo", "BAR")

	assert.Equal(t, "go BAR now", table.Replace("go $foo now"))
}

func TestReplace_UnmatchedMarkerLeftAlone(t *testing.T) {
	table := NewVariableTable()
	table.Set("$foo", "BAR")

	assert.Equal(t, "go $bar now", table.Replace("go $bar now"))
	assert.Equal(t, "$", table.Replace("$"))
	assert.Equal(t, "end with $", table.Replace("end with $"))
}

func TestReplace_MultipleOccurrences(t *testing.T) {
	table := NewVariableTable()
	table.Set("$mod", "Mod4")

	assert.Equal(t, "Mod4 and Mod4", table.Replace("$mod and $mod"))
}

func TestReplace_TableOrderPrefixMatch(t *testing.T) {
	// First prefix match in declaration order wins at a position
	table := NewVariableTable()
	table.Set("$m", "SHORT")
	table.Set("$mod", "LONG")

	assert.Equal(t, "SHORTod", table.Replace("$mod"))
}

func TestReplace_CompoundingValues(t *testing.T) {
	// A value that expands to another variable reference compounds at the
	// same position
	table := NewVariableTable()
	table.Set("$a", "$b")
	table.Set("$b", "done")

	assert.Equal(t, "done", table.Replace("$a"))
}

func TestReplace_SelfReferenceBounded(t *testing.T) {
	table := NewVariableTable()
	table.Set("$loop", "x$loop")

	// Must terminate; the depth bound stops the expansion
	result := table.Replace("$loop")
	assert.Contains(t, result, "x")
	assert.LessOrEqual(t, len(result), maxReplaceDepth+len("$loop")+1)
}

func TestReplace_DoubledMarkerEscapes(t *testing.T) {
	table := NewVariableTable()
	table.Set("$foo", "BAR")

	assert.Equal(t, "literal $foo", table.Replace("literal $$foo"))
	assert.Equal(t, "$", table.Replace("$$"))
}

func TestReplace_ContinuesPastReplacement(t *testing.T) {
	table := NewVariableTable()
	table.Set("$term", "urxvt")

	assert.Equal(t, "exec urxvt -e $run", table.Replace("exec $term -e $run"))
}
