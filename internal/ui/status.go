package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitscope/gitscope/internal/render"
	"github.com/gitscope/gitscope/internal/theme"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(theme.TextMutedColor).
			Background(theme.HeaderBackgroundColor)

	statusSegmentStyle = lipgloss.NewStyle().
				Foreground(theme.TextPrimaryColor).
				Background(theme.HeaderBackgroundColor)
)

// renderStatusBar renders the footer line: view mode, scroll position, and
// cache hit rates.
func (m Model) renderStatusBar() string {
	var segments []string

	if m.view == viewAnnotate && m.annotator != nil {
		segments = append(segments,
			"annotate",
			m.annotator.StatusLine(),
			fmt.Sprintf("%3.0f%%", m.annVp.ScrollPercent()*100),
		)
	} else {
		mode := m.renderer.View().String()
		switch m.renderer.Intra() {
		case render.IntraChars:
			mode += " +chars"
		case render.IntraWords:
			mode += " +words"
		}
		segments = append(segments,
			mode,
			fmt.Sprintf("%3.0f%%", m.diffVp.ScrollPercent()*100),
		)
	}

	renderMetrics := m.renderer.Cache().Metrics()
	highlightMetrics := m.renderer.HighlightMetrics()
	segments = append(segments, fmt.Sprintf("cache %d%% render / %d%% highlight",
		int(renderMetrics.HitRate()),
		int(highlightMetrics.HitRate()),
	))

	bar := statusSegmentStyle.Render(" " + strings.Join(segments, " │ ") + " ")
	if lipgloss.Width(bar) < m.width {
		bar += statusBarStyle.Render(strings.Repeat(" ", m.width-lipgloss.Width(bar)))
	}
	return bar
}
