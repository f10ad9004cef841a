package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StackDirection lays children out vertically or horizontally.
type StackDirection string

const (
	StackColumn StackDirection = "column"
	StackRow    StackDirection = "row"
)

// StackSpacing is a spacing token.
type StackSpacing string

// Spacing tokens, smallest to largest.
const (
	Spacing0   StackSpacing = "0"
	Spacing4XS StackSpacing = "4xs"
	Spacing3XS StackSpacing = "3xs"
	Spacing2XS StackSpacing = "2xs"
	SpacingXS  StackSpacing = "xs"
	SpacingS   StackSpacing = "s"
	SpacingM   StackSpacing = "m"
	SpacingL   StackSpacing = "l"
	SpacingXL  StackSpacing = "xl"
	Spacing2XL StackSpacing = "2xl"
)

// Terminal cells can't express sub-cell gaps, so the four smallest
// tokens collapse onto 0 and 1.
var spacingCells = map[StackSpacing]int{
	Spacing0:   0,
	Spacing4XS: 0,
	Spacing3XS: 0,
	Spacing2XS: 1,
	SpacingXS:  1,
	SpacingS:   1,
	SpacingM:   2,
	SpacingL:   3,
	SpacingXL:  4,
	Spacing2XL: 6,
}

// SpacingCells returns the gap in cells for a token. Unknown tokens use m.
func SpacingCells(spacing StackSpacing) int {
	if n, ok := spacingCells[spacing]; ok {
		return n
	}
	return spacingCells[SpacingM]
}

// StackLineGap returns the blank lines a column Stack puts between children.
// Vertical gaps are halved so m stays readable, but never drop below one line
// for a non-zero token.
func StackLineGap(spacing StackSpacing) int {
	gap := SpacingCells(spacing)
	lines := gap / 2
	if gap > 0 && lines == 0 {
		lines = 1
	}
	return lines
}

// Stack joins children with a gap. Empty children are skipped.
func Stack(children []string, direction StackDirection, spacing StackSpacing) string {
	items := make([]string, 0, len(children))
	for _, c := range children {
		if c != "" {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return ""
	}
	gap := SpacingCells(spacing)

	if direction == StackRow {
		parts := make([]string, 0, len(items)*2-1)
		spacer := strings.Repeat(" ", gap)
		for i, item := range items {
			if i > 0 && gap > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, item)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	sep := strings.Repeat("\n", StackLineGap(spacing))
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(sep)
		}
		b.WriteString(item)
	}
	return b.String()
}
