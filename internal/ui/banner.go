package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/designkit/internal/ui/components"
)

const bannerSubtitle = "Component Preview • Tabs"

// RenderBanner returns the title block shown above the tab groups.
func RenderBanner(title string) string {
	if strings.TrimSpace(title) == "" {
		title = "designkit"
	}
	heading := components.Typography(title, components.TypographyOptions{Variant: components.Header1})

	blockWidth := lipgloss.Width(heading)
	if w := lipgloss.Width(bannerSubtitle); w > blockWidth {
		blockWidth = w
	}
	subtitle := MutedStyle.Render(bannerSubtitle)
	underline := DividerStyle.Render(strings.Repeat("─", blockWidth))

	return heading + "\n" + subtitle + "\n" + underline
}
