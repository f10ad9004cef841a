package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GridColumn defines a single column for Grid.
//
// Width is the visual width of the cell content, separators excluded.
type GridColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridLeftOffset = 2

// SelectedMark flags a selected row in a grid cell.
const SelectedMark = "●"

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#273540"))

	gridHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	gridActiveRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d7d9da")).
				Background(lipgloss.Color("#1f2530")).
				Bold(true)

	gridActiveSepStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#273540")).
				Background(lipgloss.Color("#1f2530"))

	gridMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)
)

// Grid renders rows under a header using the rounded border glyphs of Box.
// The result is exactly width cells wide.
func Grid(columns []GridColumn, rows [][]string, width int) string {
	return GridWithActiveRow(columns, rows, width, -1)
}

// GridWithActiveRow is Grid with row activeRow highlighted; -1 disables it.
func GridWithActiveRow(columns []GridColumn, rows [][]string, width int, activeRow int) string {
	if width <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", width)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, border.Left, width)

	out := make([]string, 0, len(rows)+2)
	out = append(out, renderGridRow(cols, gridHeaders(cols), border.Left, width, true, false))
	out = append(out, renderGridRule(cols, border.Middle, border.Top, width))
	for i, row := range rows {
		out = append(out, renderGridRow(cols, row, border.Left, width, false, i == activeRow))
	}
	return strings.Join(out, "\n")
}

func gridHeaders(columns []GridColumn) []string {
	hdr := make([]string, len(columns))
	for i, c := range columns {
		hdr[i] = SanitizeOneLine(c.Header)
	}
	return hdr
}

// fitGridColumns stretches or shrinks the last column so the row fills width.
func fitGridColumns(columns []GridColumn, sep string, width int) []GridColumn {
	fitted := make([]GridColumn, len(columns))
	copy(fitted, columns)

	sepW := maxInt(lipgloss.Width(sep), 1)
	content := maxInt(width-gridLeftOffset, len(fitted))

	sum := 0
	for i := range fitted {
		if fitted[i].Width < 1 {
			fitted[i].Width = 1
		}
		sum += fitted[i].Width
	}
	sum += (len(fitted) - 1) * sepW

	last := len(fitted) - 1
	fitted[last].Width = maxInt(fitted[last].Width+content-sum, 1)
	return fitted
}

func renderGridRow(columns []GridColumn, cells []string, sep string, width int, header, active bool) string {
	sepStyle := gridLineStyle
	if active {
		sepStyle = gridActiveSepStyle
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		cell := renderGridCell(text, col.Width, col.Align)
		switch {
		case header:
			cell = gridHeaderStyle.Inline(true).Render(cell)
		case active:
			cell = gridActiveRowStyle.Inline(true).Render(cell)
		default:
			cell = strings.ReplaceAll(cell, SelectedMark, gridMarkStyle.Render(SelectedMark))
		}
		b.WriteString(cell)
	}
	return padRight(b.String(), width)
}

func renderGridRule(columns []GridColumn, cross, horiz string, width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		b.WriteString(strings.Repeat(horiz, maxInt(col.Width, 1)))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	return gridLineStyle.Inline(true).Render(padRight(b.String(), width))
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return truncateRunes(clamped, width)
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
