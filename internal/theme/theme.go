// Package theme contains the Lip Gloss color tokens and styles shared by
// the render layer, plus the heatmap gradient that maps blame intensities
// to colors.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// Diff line colors
	DiffAdditionColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	DiffDeletionColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
	DiffContextColor  = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}
	DiffHunkColor     = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}

	// Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"}
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}

	// File header background
	HeaderBackgroundColor = lipgloss.AdaptiveColor{Light: "#DCE0E8", Dark: "#313244"}

	// Line type styles for hot path rendering, built once at package init
	// to avoid per-frame allocations.
	LineAddStyle     = lipgloss.NewStyle().Foreground(DiffAdditionColor)
	LineDelStyle     = lipgloss.NewStyle().Foreground(DiffDeletionColor)
	LineContextStyle = lipgloss.NewStyle().Foreground(DiffContextColor)
	LineHunkStyle    = lipgloss.NewStyle().Foreground(DiffHunkColor)
	LineGutterStyle  = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Intra-line change emphasis: changed characters get the line color
	// plus bold and an underline so the emphasis survives monochrome
	// terminals.
	EmphasisAddStyle = lipgloss.NewStyle().Foreground(DiffAdditionColor).Bold(true).Underline(true)
	EmphasisDelStyle = lipgloss.NewStyle().Foreground(DiffDeletionColor).Bold(true).Underline(true)

	FileHeaderStyle = lipgloss.NewStyle().
			Foreground(TextPrimaryColor).
			Bold(true).
			Background(HeaderBackgroundColor)

	// Blame gutter styles
	BlameShaStyle    = lipgloss.NewStyle().Foreground(DiffHunkColor)
	BlameAuthorStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	BlameDateStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
)

// Heatmap gradient endpoints: cold (old / inactive) blue through hot
// (recent / most active) red.
var (
	heatCold = mustHex("#89B4FA")
	heatWarm = mustHex("#F9E2AF")
	heatHot  = mustHex("#F38BA8")
)

// HeatColor maps a normalized intensity in [0, 1] to a gradient color.
// The blend runs in Luv space to keep perceived brightness even across the
// ramp. Out-of-range intensities are clamped.
func HeatColor(intensity float64) lipgloss.Color {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	var c colorful.Color
	if intensity < 0.5 {
		c = heatCold.BlendLuv(heatWarm, intensity*2)
	} else {
		c = heatWarm.BlendLuv(heatHot, (intensity-0.5)*2)
	}
	return lipgloss.Color(c.Clamped().Hex())
}

// AuthorColor maps a stable author value in [0, 1) to a hue on the color
// wheel, with fixed saturation and brightness so every author color stays
// legible against the background.
func AuthorColor(value float64) lipgloss.Color {
	if value < 0 {
		value = 0
	}
	if value >= 1 {
		value = 0.999
	}
	c := colorful.Hsv(value*360, 0.55, 0.85)
	return lipgloss.Color(c.Clamped().Hex())
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("theme: bad hex constant " + s)
	}
	return c
}
