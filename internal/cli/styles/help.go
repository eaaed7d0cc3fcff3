package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PanelKeyMap defines keybindings for the floating panel demo.
type PanelKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Pin      key.Binding
	Minimize key.Binding
	Aspect   key.Binding
	Split    key.Binding
	Detach   key.Binding
	Close    key.Binding
	CloseAll key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PanelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pin, k.Minimize, k.Close, k.CloseAll, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PanelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Pin, k.Minimize, k.Aspect},
		{k.Split, k.Detach},
		{k.Close, k.CloseAll},
		{k.Help, k.Quit},
	}
}

// DefaultPanelKeyMap returns the default panel keybindings.
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Pin: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pin"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		Aspect: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "lock aspect"),
		),
		Split: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split"),
		),
		Detach: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "close view"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecentKeyMap defines keybindings for the recent list.
type RecentKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Forget key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k RecentKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Forget, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k RecentKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Forget},
		{k.Help, k.Quit},
	}
}

// DefaultRecentKeyMap returns the default recent list keybindings.
func DefaultRecentKeyMap() RecentKeyMap {
	return RecentKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Forget: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "forget"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
