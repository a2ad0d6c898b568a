package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitscope/gitscope/internal/keys"
	"github.com/gitscope/gitscope/internal/theme"
)

// Help styles (package-level to avoid recreating each render).
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.DiffHunkColor).
			PaddingLeft(2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(theme.TextPrimaryColor).
			Width(11)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(theme.TextMutedColor)

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.TextMutedColor).
			Padding(0, 2)
)

// helpBindings lists the bindings shown in the overlay, in display order.
func helpBindings() []key.Binding {
	k := keys.Viewer
	return []key.Binding{
		k.Up, k.Down, k.PageUp, k.PageDown,
		k.HalfPageUp, k.HalfPageDown, k.Top, k.Bottom,
		k.NextFile, k.PrevFile,
		k.ToggleView, k.CycleIntra, k.ToggleAnnotate, k.CycleBlameMode,
		k.Refresh, k.ToggleStatus, k.Help, k.Quit,
	}
}

// renderHelp renders the keybinding overlay centered on screen.
func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render("Keybindings"))
	sb.WriteString("\n\n")

	for _, b := range helpBindings() {
		h := b.Help()
		sb.WriteString("  ")
		sb.WriteString(helpKeyStyle.Render(h.Key))
		sb.WriteString(helpDescStyle.Render(h.Desc))
		sb.WriteString("\n")
	}

	box := helpBoxStyle.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
