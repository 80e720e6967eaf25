package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation, except space which is "space".
type KeybindRegistry struct {
	bindings   map[string]tea.Cmd
	help       []key.Binding
	modeFilter map[int][]WatchMode // index into help; nil/empty = applies to all modes
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:   make(map[string]tea.Cmd),
		modeFilter: make(map[int][]WatchMode),
	}
}

// Bind registers keys to a command with a help label and description.
// The help entry applies to all WatchModes.
// Overwrites any existing binding for the keys.
func (r *KeybindRegistry) Bind(keys []string, label, desc string, cmd tea.Cmd) {
	r.BindForMode(keys, label, desc, cmd, nil)
}

// BindForMode registers keys like Bind but only shows the help entry when the
// current mode is in modes. The keys themselves stay bound in every mode.
func (r *KeybindRegistry) BindForMode(keys []string, label, desc string, cmd tea.Cmd, modes []WatchMode) {
	normalized := make([]string, 0, len(keys))
	for _, k := range keys {
		n := normalizeKey(k)
		r.bindings[n] = cmd
		normalized = append(normalized, n)
	}
	if desc == "" {
		return
	}
	r.help = append(r.help, key.NewBinding(
		key.WithKeys(normalized...),
		key.WithHelp(label, desc),
	))
	if len(modes) > 0 {
		r.modeFilter[len(r.help)-1] = modes
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Handle looks up the command for a KeyMsg. Returns (consumed, cmd).
func (r *KeybindRegistry) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if c := r.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// Hints returns the help bindings that apply to mode, in registration order.
func (r *KeybindRegistry) Hints(mode WatchMode) []key.Binding {
	out := make([]key.Binding, 0, len(r.help))
	for i, b := range r.help {
		if r.appliesToMode(i, mode) {
			out = append(out, b)
		}
	}
	return out
}

// appliesToMode returns true if the help entry applies to the given mode.
func (r *KeybindRegistry) appliesToMode(i int, mode WatchMode) bool {
	modes, ok := r.modeFilter[i]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeKey converts tea key strings to our canonical format.
// " " -> "space", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.TrimSpace(k)
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	mode     WatchMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode WatchMode) KeyMap {
	return KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints(km.mode)
}

// FullHelp returns bindings grouped by columns for the full help view.
// Buttons first, then everything else.
func (km KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	var buttons, other []key.Binding
	for _, b := range short {
		if isButtonKey(b.Keys()) {
			buttons = append(buttons, b)
		} else {
			other = append(other, b)
		}
	}
	if len(buttons) == 0 || len(other) == 0 {
		return [][]key.Binding{short}
	}
	return [][]key.Binding{buttons, other}
}

func isButtonKey(keys []string) bool {
	for _, k := range keys {
		switch k {
		case "up", "down", "enter", "space":
			return true
		}
	}
	return false
}
