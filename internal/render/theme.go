// Package render formats classification results for the terminal.
package render

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/testlens/internal/category"
	"github.com/abhisek/testlens/internal/fit"
)

var (
	Red     = lipgloss.Color("#F43F5E")
	Orange  = lipgloss.Color("#F97316")
	Amber   = lipgloss.Color("#EAB308")
	Green   = lipgloss.Color("#22C55E")
	Teal    = lipgloss.Color("#14B8A6")
	Blue    = lipgloss.Color("#3B82F6")
	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	Border  = lipgloss.Color("#334155")
)

var toneColors = map[category.Tone]color.Color{
	category.ToneVeryBad:  Red,
	category.ToneBad:      Orange,
	category.ToneAverage:  Amber,
	category.ToneGood:     Green,
	category.ToneVeryGood: Teal,
}

var variantColors = map[category.Variant]color.Color{
	category.VariantVeryEasy: Blue,
	category.VariantEasy:     Teal,
	category.VariantMedium:   Green,
	category.VariantHard:     Orange,
	category.VariantVeryHard: Red,
}

// Theme holds the styles used by a Renderer. The zero Theme renders
// plain text.
type Theme struct {
	color bool

	Title  lipgloss.Style
	Header lipgloss.Style
	Dim    lipgloss.Style
	Card   lipgloss.Style
}

func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}
	return Theme{
		color:  true,
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Teal),
		Header: lipgloss.NewStyle().Bold(true).Foreground(TextDim),
		Dim:    lipgloss.NewStyle().Foreground(TextDim).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
	}
}

// ToneText colours s by tone.
func (t Theme) ToneText(tone category.Tone, s string) string {
	c, ok := toneColors[tone]
	if !t.color || !ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Badge renders a descriptor label as a filled badge for variants and as
// tone-coloured text otherwise.
func (t Theme) Badge(d category.Descriptor) string {
	c, ok := variantColors[d.Variant]
	if !ok {
		return t.ToneText(d.Tone, d.Label)
	}
	if !t.color {
		return "[" + d.Label + "]"
	}
	return lipgloss.NewStyle().
		Background(c).
		Foreground(Text).
		Bold(true).
		Padding(0, 1).
		Render(d.Label)
}

// VerdictBadge renders a verdict with its variant colour.
func (t Theme) VerdictBadge(v fit.Verdict) string {
	return t.Badge(category.Descriptor{Label: v.Label(), Variant: v.Variant()})
}

func (t Theme) render(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}
