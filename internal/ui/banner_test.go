package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/designkit/internal/ui/components"
)

func TestRenderBannerIncludesTitleSubtitleAndRule(t *testing.T) {
	out := RenderBanner("Settings")
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Settings")
	assert.Contains(t, clean, "Component Preview")
	assert.Contains(t, clean, "─")
}

func TestRenderBannerDefaultsTitle(t *testing.T) {
	clean := components.SanitizeText(RenderBanner("  "))
	assert.Contains(t, clean, "designkit")
}
