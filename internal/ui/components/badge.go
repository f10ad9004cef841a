package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant selects the badge color scheme.
type BadgeVariant string

const (
	BadgeNeutral  BadgeVariant = "neutral"
	BadgePositive BadgeVariant = "positive"
	BadgeNegative BadgeVariant = "negative"
)

var badgeBase = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1)

var badgeStyles = map[BadgeVariant]lipgloss.Style{
	BadgeNeutral: badgeBase.
		Foreground(lipgloss.Color("#16161d")).
		Background(lipgloss.Color("#888ba4")),
	BadgePositive: badgeBase.
		Foreground(lipgloss.Color("#16161d")).
		Background(lipgloss.Color("#3f866b")),
	BadgeNegative: badgeBase.
		Foreground(lipgloss.Color("#f4e6e8")).
		Background(lipgloss.Color("#a3434f")),
}

// ParseBadgeVariant maps a name to a variant. Unknown names report false.
func ParseBadgeVariant(name string) (BadgeVariant, bool) {
	switch v := BadgeVariant(strings.ToLower(strings.TrimSpace(name))); v {
	case "":
		return BadgeNeutral, true
	case BadgeNeutral, BadgePositive, BadgeNegative:
		return v, true
	}
	return BadgeNeutral, false
}

// Badge renders a short label as a colored pill.
func Badge(text string, variant BadgeVariant) string {
	style, ok := badgeStyles[variant]
	if !ok {
		style = badgeStyles[BadgeNeutral]
	}
	return style.Render(SanitizeOneLine(text))
}
