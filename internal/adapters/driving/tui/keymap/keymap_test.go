package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"q", "ctrl+c"}},
		{"back", km.Back, []string{"esc"}},
		{"up", km.Up, []string{"up", "k"}},
		{"down", km.Down, []string{"down", "j"}},
		{"search", km.Search, []string{"/"}},
		{"create", km.Create, []string{"n"}},
		{"edit", km.Edit, []string{"e", "enter"}},
		{"preview", km.Preview, []string{"p"}},
		{"delete", km.Delete, []string{"d", "x"}},
		{"reload", km.Reload, []string{"r"}},
		{"save", km.Save, []string{"enter", "ctrl+s"}},
		{"next field", km.NextField, []string{"tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range tt.keys {
				assert.Contains(t, tt.binding.Keys(), k)
			}
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_DashboardKeysDoNotCollide(t *testing.T) {
	km := DefaultKeyMap()
	seen := make(map[string]string)

	for _, b := range km.DashboardHelp() {
		for _, k := range b.Keys() {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Help().Desc)
			seen[k] = b.Help().Desc
		}
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 2)
	assert.Equal(t, "new cv", help[0].Help().Desc)
}

func TestKeyMap_EditorHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.EditorHelp(), 3)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.NotEmpty(t, g)
	}
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("d", km.Delete))
	assert.True(t, Matches("x", km.Delete))
	assert.False(t, Matches("e", km.Delete))
	assert.False(t, Matches("", km.Delete))
}
