// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the dashboard or leaves the search field.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Search focuses the search field.
	Search key.Binding

	// Create opens the editor for a new CV.
	Create key.Binding

	// Edit opens the editor for the selected CV.
	Edit key.Binding

	// Preview opens the selected CV read-only.
	Preview key.Binding

	// Delete removes the selected CV after the grace interval.
	Delete key.Binding

	// Reload re-reads the collection from the store.
	Reload key.Binding

	// Save submits the editor form.
	Save key.Binding

	// NextField moves focus between editor fields.
	NextField key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new cv"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "up", "down"),
			key.WithHelp("tab", "next field"),
		),
	}
}

// ShortHelp returns the hints shown when the collection is empty.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Create, k.Quit}
}

// DashboardHelp returns keybindings for a non-empty dashboard.
func (k *KeyMap) DashboardHelp() []key.Binding {
	return []key.Binding{k.Search, k.Create, k.Edit, k.Preview, k.Delete, k.Quit}
}

// EditorHelp returns keybindings for the editor.
func (k *KeyMap) EditorHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Save, k.Back}
}

// FullHelp returns the full list of keybindings grouped by purpose.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Search},
		{k.Create, k.Edit, k.Preview, k.Delete},
		{k.Reload, k.Back, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
