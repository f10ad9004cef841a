package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBadgeRendersSanitizedText(t *testing.T) {
	out := Badge("new\x1b[2J\n", BadgePositive)
	assert.Contains(t, out, "new")
	assert.NotContains(t, out, "\x1b[2J")
	assert.NotContains(t, out, "\n")
}

func TestBadgeUnknownVariantFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, Badge("x", BadgeNeutral), Badge("x", BadgeVariant("sparkly")))
}

func TestParseBadgeVariant(t *testing.T) {
	v, ok := ParseBadgeVariant(" Negative ")
	assert.True(t, ok)
	assert.Equal(t, BadgeNegative, v)

	v, ok = ParseBadgeVariant("")
	assert.True(t, ok)
	assert.Equal(t, BadgeNeutral, v)

	_, ok = ParseBadgeVariant("loud")
	assert.False(t, ok)
}

func TestTypographyDefaultsToBodyM(t *testing.T) {
	assert.Equal(t,
		Typography("hello", TypographyOptions{Variant: BodyM}),
		Typography("hello", TypographyOptions{}),
	)
}

func TestTypographyHeadersAreOneLine(t *testing.T) {
	out := Typography("Big\ntitle", TypographyOptions{Variant: Header1})
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "Big title")
}

func TestTypographyBodyKeepsLines(t *testing.T) {
	out := Typography("one\ntwo", TypographyOptions{Variant: BodyS})
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestTypographyWidthWraps(t *testing.T) {
	out := Typography("a fairly long sentence that wraps", TypographyOptions{Width: 10})
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
}

func TestParseTypographyVariant(t *testing.T) {
	v, ok := ParseTypographyVariant("header-2")
	assert.True(t, ok)
	assert.Equal(t, Header2, v)
	assert.True(t, v.IsHeader())
	assert.False(t, BodyS.IsHeader())

	_, ok = ParseTypographyVariant("display")
	assert.False(t, ok)
}

func TestStackColumnSpacing(t *testing.T) {
	assert.Equal(t, "a\nb", Stack([]string{"a", "b"}, StackColumn, Spacing0))
	assert.Equal(t, "a\n\nb", Stack([]string{"a", "b"}, StackColumn, SpacingS))
	assert.Equal(t, "a\n\nb", Stack([]string{"a", "", "b"}, StackColumn, SpacingM))
	assert.Equal(t, "a\n\n\nb", Stack([]string{"a", "b"}, StackColumn, SpacingXL))
}

func TestStackLineGapMatchesColumnStack(t *testing.T) {
	for _, sp := range []StackSpacing{Spacing0, Spacing2XS, SpacingS, SpacingM, SpacingL, SpacingXL, Spacing2XL} {
		want := "a\n" + strings.Repeat("\n", StackLineGap(sp)) + "b"
		assert.Equal(t, want, Stack([]string{"a", "b"}, StackColumn, sp), "spacing %q", sp)
	}
	assert.Equal(t, 1, StackLineGap(SpacingXS))
	assert.Equal(t, 1, StackLineGap(SpacingL))
	assert.Equal(t, 0, StackLineGap(Spacing0))
}

func TestStackRowSpacing(t *testing.T) {
	assert.Equal(t, "ab", Stack([]string{"a", "b"}, StackRow, Spacing0))
	assert.Equal(t, "a  b", Stack([]string{"a", "b"}, StackRow, SpacingM))
}

func TestStackEmpty(t *testing.T) {
	assert.Equal(t, "", Stack(nil, StackColumn, SpacingM))
	assert.Equal(t, "", Stack([]string{"", ""}, StackRow, SpacingM))
}

func TestSpacingCellsUnknownUsesM(t *testing.T) {
	assert.Equal(t, SpacingCells(SpacingM), SpacingCells(StackSpacing("huge")))
}

func TestTabLabelStates(t *testing.T) {
	idle := TabLabel("General", TabState{Variant: TabPill})
	selected := TabLabel("General", TabState{Variant: TabPill, Selected: true})
	focused := TabLabel("General", TabState{Variant: TabPill, Selected: true, Focused: true})
	disabled := TabLabel("General", TabState{Variant: TabPill, Disabled: true, Selected: true})

	for _, out := range []string{idle, selected, focused, disabled} {
		assert.Contains(t, out, "General")
	}
	assert.Contains(t, focused, "›")
	assert.NotContains(t, selected, "›")
	assert.Equal(t, lipgloss.Width(idle), lipgloss.Width(focused))
}

func TestTabsListUnderlineAddsRule(t *testing.T) {
	labels := []string{
		TabLabel("One", TabState{Variant: TabUnderline, Selected: true}),
		TabLabel("Two", TabState{Variant: TabUnderline}),
	}
	pill := TabsList(labels, TabPill)
	underline := TabsList(labels, TabUnderline)

	assert.Len(t, strings.Split(pill, "\n"), 1)
	lines := strings.Split(underline, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "─")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestParseTabVariant(t *testing.T) {
	v, ok := ParseTabVariant("UNDERLINE")
	assert.True(t, ok)
	assert.Equal(t, TabUnderline, v)

	v, ok = ParseTabVariant("")
	assert.True(t, ok)
	assert.Equal(t, TabPill, v)

	_, ok = ParseTabVariant("folder")
	assert.False(t, ok)
}

func TestTabPanelHiddenRendersNothing(t *testing.T) {
	assert.Equal(t, "", TabPanel("body", true, 80))
	assert.Equal(t, "", FocusedTabPanel("body", true, 80))
	assert.Contains(t, TabPanel("body", false, 80), "body")
	assert.Contains(t, FocusedTabPanel("body", false, 80), "body")
}

func TestGridRendersHeaderRuleAndRows(t *testing.T) {
	cols := []GridColumn{
		{Header: "Element", Width: 12},
		{Header: "Sel", Width: 3, Align: lipgloss.Center},
		{Header: "Index", Width: 5, Align: lipgloss.Right},
	}
	rows := [][]string{
		{"g-tab-a", SelectedMark, "0"},
		{"g-tab-b", "", "-1"},
	}
	out := GridWithActiveRow(cols, rows, 40, 0)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.Contains(t, lines[0], "Element")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "g-tab-a")
	assert.Contains(t, lines[3], "-1")
}

func TestGridEdgeCases(t *testing.T) {
	assert.Equal(t, "", Grid([]GridColumn{{Header: "x", Width: 3}}, nil, 0))
	assert.Equal(t, strings.Repeat(" ", 5), Grid(nil, nil, 5))
}
