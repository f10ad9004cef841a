package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant selects a text role.
type TypographyVariant string

const (
	BodyM   TypographyVariant = "body-m"
	BodyS   TypographyVariant = "body-s"
	Header1 TypographyVariant = "header-1"
	Header2 TypographyVariant = "header-2"
	Header3 TypographyVariant = "header-3"
)

// Weight selects the text weight.
type Weight string

const (
	WeightRegular Weight = "regular"
	WeightMedium  Weight = "medium"
	WeightBold    Weight = "bold"
)

// TypographyOptions configures Typography. The zero value is body-m, regular.
type TypographyOptions struct {
	Variant TypographyVariant
	Weight  Weight
	Width   int
}

var typographyStyles = map[TypographyVariant]lipgloss.Style{
	Header1: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7f57b4")).
		Bold(true).
		Underline(true),
	Header2: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#436b77")).
		Bold(true),
	Header3: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d7d9da")).
		Bold(true),
	BodyM: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d7d9da")),
	BodyS: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#9ba0bf")),
}

// ParseTypographyVariant maps a name to a variant. Unknown names report false.
func ParseTypographyVariant(name string) (TypographyVariant, bool) {
	switch v := TypographyVariant(strings.ToLower(strings.TrimSpace(name))); v {
	case "":
		return BodyM, true
	case BodyM, BodyS, Header1, Header2, Header3:
		return v, true
	}
	return BodyM, false
}

// IsHeader reports whether v is one of the header variants.
func (v TypographyVariant) IsHeader() bool {
	return v == Header1 || v == Header2 || v == Header3
}

// Typography renders text in the given variant and weight.
// Width wraps the text when positive.
func Typography(text string, opts TypographyOptions) string {
	variant := opts.Variant
	if variant == "" {
		variant = BodyM
	}
	style, ok := typographyStyles[variant]
	if !ok {
		style = typographyStyles[BodyM]
	}
	switch opts.Weight {
	case WeightMedium:
		style = style.Bold(true)
	case WeightBold:
		style = style.Bold(true).Foreground(lipgloss.Color("#ffffff"))
	}
	if opts.Width > 0 {
		style = style.Width(opts.Width)
	}
	if variant.IsHeader() {
		return style.Render(SanitizeOneLine(text))
	}
	return style.Render(SanitizeText(text))
}
