package ui

import (
	"github.com/gravitrone/designkit/internal/config"
	"github.com/gravitrone/designkit/internal/layout"
	"github.com/gravitrone/designkit/internal/ui/components"
)

// Snapshot renders l once without focus. With aria set it renders the
// accessibility attributes of every group instead of the tabs.
func Snapshot(cfg *config.Config, l *layout.Layout, width int, aria bool) string {
	if cfg == nil {
		cfg = config.Default()
	}
	parts := make([]string, 0, len(l.Groups)+1)
	parts = append(parts, RenderBanner(l.Title))
	for _, g := range l.Groups {
		m := NewTabsModel(g.ID, g.Default, g.VariantOr(cfg.TabVariant), ItemsFromGroup(g)).WithTitle(g.Title)
		m.width = width
		if aria {
			parts = append(parts, m.AccessibilityView(width))
			continue
		}
		parts = append(parts, m.View())
	}
	return components.Stack(parts, components.StackColumn, groupSpacing)
}
