package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabVariant changes the shape of tab labels.
type TabVariant string

const (
	TabPill      TabVariant = "pill"
	TabUnderline TabVariant = "underline"
)

// TabState is what a tab label needs to know to render itself.
type TabState struct {
	Variant  TabVariant
	Selected bool
	Disabled bool
	Focused  bool
}

var (
	pillSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#16161d")).
				Background(lipgloss.Color("#7f57b4")).
				Bold(true).
				Padding(0, 1)

	pillIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf")).
			Padding(0, 1)

	underlineSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true).
				Underline(true).
				Padding(0, 1)

	underlineIdleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ba0bf")).
				Padding(0, 1)

	tabDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4a4f63")).
				Strikethrough(true).
				Padding(0, 1)

	tabFocusMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c78854")).
				Bold(true)

	tabsListRule = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))

	panelBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// ParseTabVariant maps a name to a variant. Unknown names report false.
func ParseTabVariant(name string) (TabVariant, bool) {
	switch v := TabVariant(strings.ToLower(strings.TrimSpace(name))); v {
	case "":
		return TabPill, true
	case TabPill, TabUnderline:
		return v, true
	}
	return TabPill, false
}

// TabLabel renders one tab. Focused tabs get a marker on both sides so focus
// stays visible when it differs from the selection.
func TabLabel(label string, state TabState) string {
	text := SanitizeOneLine(label)

	var style lipgloss.Style
	switch {
	case state.Disabled:
		style = tabDisabledStyle
	case state.Variant == TabUnderline && state.Selected:
		style = underlineSelectedStyle
	case state.Variant == TabUnderline:
		style = underlineIdleStyle
	case state.Selected:
		style = pillSelectedStyle
	default:
		style = pillIdleStyle
	}

	out := style.Render(text)
	if state.Focused {
		return tabFocusMarkStyle.Render("›") + out + tabFocusMarkStyle.Render("‹")
	}
	return " " + out + " "
}

// TabsList joins rendered tab labels. The underline variant draws a rule
// beneath the row.
func TabsList(labels []string, variant TabVariant) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	if variant != TabUnderline {
		return row
	}
	w := lipgloss.Width(row)
	if w == 0 {
		return row
	}
	return row + "\n" + tabsListRule.Render(strings.Repeat("─", w))
}

// TabPanel renders panel content in a box, or nothing when hidden. body is
// expected to be rendered by the other components, which sanitize their text.
func TabPanel(body string, hidden bool, width int) string {
	if hidden {
		return ""
	}
	return Box(panelBodyStyle.Render(body), width)
}

// FocusedTabPanel renders an active panel that currently holds keyboard focus.
func FocusedTabPanel(body string, hidden bool, width int) string {
	if hidden {
		return ""
	}
	return ActiveBox(panelBodyStyle.Render(body), width)
}
