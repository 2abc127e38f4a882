package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flower-quest/internal/core"
)

// KeyMap binds terminal keys to game controls.
type KeyMap struct {
	Forward    key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Inventory  key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings. S is deliberately unbound:
// there is no backwards movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "forward"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "jump"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Control maps a key message to a game control, or ControlNone.
func (k KeyMap) Control(msg tea.KeyMsg) core.Control {
	switch {
	case key.Matches(msg, k.Forward):
		return core.ControlForward
	case key.Matches(msg, k.Left):
		return core.ControlLeft
	case key.Matches(msg, k.Right):
		return core.ControlRight
	case key.Matches(msg, k.Jump):
		return core.ControlJump
	case key.Matches(msg, k.Inventory):
		return core.ControlInventory
	case key.Matches(msg, k.Start):
		return core.ControlStart
	}
	return core.ControlNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Right, k.Jump, k.Inventory, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Left, k.Right, k.Jump},
		{k.Inventory, k.Start, k.Screenshot, k.Quit},
	}
}

// isHoldControl reports whether a control has held semantics. Jump,
// inventory and start only matter as press edges.
func isHoldControl(c core.Control) bool {
	switch c {
	case core.ControlForward, core.ControlLeft, core.ControlRight:
		return true
	}
	return false
}
