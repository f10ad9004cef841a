package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const (
	boxMinWidth = 40
	boxMaxWidth = 80
	// Rounded border (2) plus horizontal padding (4).
	boxChrome = 6
)

var (
	boxBorderColor = lipgloss.Color("#273540")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(boxBorderColor).
			Padding(1, 2)

	boxActiveStyle = boxStyle.
			BorderForeground(lipgloss.Color("#7f57b4"))

	boxErrorStyle = boxStyle.
			BorderForeground(lipgloss.Color("#7a2f3a"))

	boxTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f57b4")).
			Bold(true)

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06c75")).
			Bold(true)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6b5b5"))

	tableLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#436b77")).
			Bold(true)

	tableValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))
)

// BoxWidth returns the outer width of a box for a terminal width: roughly
// 70% of it, kept between 40 and 80 cells and never wider than the terminal.
func BoxWidth(termWidth int) int {
	if termWidth <= 0 {
		return 0
	}
	w := termWidth * 70 / 100
	w = maxInt(w, boxMinWidth)
	if w > boxMaxWidth {
		w = boxMaxWidth
	}
	if w > termWidth {
		w = termWidth
	}
	return w
}

// BoxContentWidth returns the inner width of a box, excluding border and padding.
func BoxContentWidth(termWidth int) int {
	return maxInt(BoxWidth(termWidth)-boxChrome, 0)
}

// Box renders content inside a bordered box.
func Box(content string, width int) string {
	return boxStyle.Width(BoxWidth(width)).Render(content)
}

// ActiveBox renders content inside a highlighted box.
func ActiveBox(content string, width int) string {
	return boxActiveStyle.Width(BoxWidth(width)).Render(content)
}

// ErrorBox renders a red box for errors.
func ErrorBox(title, message string, width int) string {
	body := errorBodyStyle.Render(SanitizeText(message))
	if title != "" {
		body = errorTitleStyle.Render(SanitizeOneLine(title)) + "\n\n" + body
	}
	return boxErrorStyle.Width(BoxWidth(width)).Render(body)
}

// TitledBox renders a box with title set into its top border.
func TitledBox(title, content string, width int) string {
	boxed := Box(content, width)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	inner := lineWidth - 2
	label := fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title))
	if lipgloss.Width(label) > inner {
		label = truncateRunes(label, inner)
	}
	left := (inner - lipgloss.Width(label)) / 2
	right := maxInt(inner-lipgloss.Width(label)-left, 0)

	edge := lipgloss.NewStyle().Foreground(boxBorderColor)
	lines[0] = edge.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		boxTitleStyle.Render(label) +
		edge.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders aligned label/value rows inside a titled box.
func Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = maxInt(labelWidth, lipgloss.Width(SanitizeOneLine(r.Label)))
	}
	if labelWidth > 24 {
		labelWidth = 24
	}
	valueWidth := 0
	if content := BoxContentWidth(width); content > 0 {
		valueWidth = maxInt(content-labelWidth-2, 4)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := padRight(ClampTextWidth(r.Label, labelWidth), labelWidth)
		lines = append(lines, tableLabelStyle.Render(label)+"  "+tableValueStyle.Render(ClampTextWidth(r.Value, valueWidth)))
	}
	return TitledBox(title, strings.Join(lines, "\n"), width)
}

// ClampTextWidth sanitizes text to one line and truncates it to width cells.
// A non-positive width only sanitizes.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 || lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return truncateRunes(cleaned, width)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
