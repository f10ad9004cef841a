package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/designkit/internal/tabs"
)

// --- Key Maps ---

// TabsKeyMap binds terminal keys to the tab navigation keys.
type TabsKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Enter     key.Binding
	Space     key.Binding
	IntoPanel key.Binding
	OutPanel  key.Binding
}

// DefaultTabsKeyMap returns the tab bindings. vim adds h/l/g/G.
func DefaultTabsKeyMap(vim bool) TabsKeyMap {
	left, right, home, end := []string{"left"}, []string{"right"}, []string{"home"}, []string{"end"}
	leftHelp, rightHelp := "←", "→"
	if vim {
		left = append(left, "h")
		right = append(right, "l")
		home = append(home, "g")
		end = append(end, "G")
		leftHelp, rightHelp = "←/h", "→/l"
	}
	return TabsKeyMap{
		Left:      key.NewBinding(key.WithKeys(left...), key.WithHelp(leftHelp, "Prev")),
		Right:     key.NewBinding(key.WithKeys(right...), key.WithHelp(rightHelp, "Next")),
		Home:      key.NewBinding(key.WithKeys(home...), key.WithHelp("home", "First")),
		End:       key.NewBinding(key.WithKeys(end...), key.WithHelp("end", "Last")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Activate")),
		Space:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "Activate")),
		IntoPanel: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Panel")),
		OutPanel:  key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Tabs")),
	}
}

// navKey translates a terminal key into the key the tabs policy understands.
// Keys without a binding keep their terminal name and are delegated.
func (k TabsKeyMap) navKey(msg tea.KeyMsg) tabs.Key {
	switch {
	case key.Matches(msg, k.Left):
		return tabs.KeyArrowLeft
	case key.Matches(msg, k.Right):
		return tabs.KeyArrowRight
	case key.Matches(msg, k.Home):
		return tabs.KeyHome
	case key.Matches(msg, k.End):
		return tabs.KeyEnd
	case key.Matches(msg, k.Enter):
		return tabs.KeyEnter
	case key.Matches(msg, k.Space):
		return tabs.KeySpace
	}
	return tabs.Key(msg.String())
}

// AppKeyMap holds the global bindings of the preview app.
type AppKeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	NextGroup key.Binding
	PrevGroup key.Binding
	Reload    key.Binding
	Back      key.Binding
}

// DefaultAppKeyMap returns the global bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Help")),
		NextGroup: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Next group")),
		PrevGroup: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "Prev group")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reload")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Back")),
	}
}
