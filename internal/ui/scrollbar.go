package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gitscope/gitscope/internal/theme"
)

// Scrollbar characters
const (
	scrollbarThumbChar = '█' // Full block
	scrollbarTrackChar = '░' // Light shade
)

// ScrollbarConfig configures scrollbar rendering.
type ScrollbarConfig struct {
	TotalLines     int // Total lines in content
	ViewportHeight int // Visible lines in viewport
	ScrollOffset   int // Current scroll position (top line)
}

// calculateThumbBounds returns the start row and height of the scroll thumb.
// Formula: thumbHeight = max(1, viewportHeight * viewportHeight / totalLines)
// Position: start = scrollOffset * scrollableTrack / maxOffset
func calculateThumbBounds(cfg ScrollbarConfig) (start, height int) {
	if cfg.TotalLines <= 0 || cfg.ViewportHeight <= 0 {
		return 0, 0
	}

	// If content fits in viewport, thumb fills entire track
	if cfg.TotalLines <= cfg.ViewportHeight {
		return 0, cfg.ViewportHeight
	}

	// Thumb height proportional to visible/total ratio, minimum 1 so the
	// thumb stays visible for very long content
	height = max(1, cfg.ViewportHeight*cfg.ViewportHeight/cfg.TotalLines)

	maxOffset := cfg.TotalLines - cfg.ViewportHeight
	if maxOffset <= 0 {
		return 0, height
	}

	// Scrollable track area (total height minus thumb size)
	scrollableTrack := cfg.ViewportHeight - height
	if scrollableTrack <= 0 {
		return 0, height
	}

	start = scrollableTrack * cfg.ScrollOffset / maxOffset
	start = max(0, min(start, cfg.ViewportHeight-height))

	return start, height
}

// RenderScrollbar renders the scrollbar as a string (height lines joined
// by \n). Returns spaces when the content fits in the viewport.
func RenderScrollbar(cfg ScrollbarConfig) string {
	if cfg.ViewportHeight <= 0 || cfg.TotalLines <= 0 {
		return ""
	}

	if cfg.TotalLines <= cfg.ViewportHeight {
		lines := make([]string, cfg.ViewportHeight)
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	thumbStart, thumbHeight := calculateThumbBounds(cfg)

	trackStyle := lipgloss.NewStyle().Foreground(theme.TextMutedColor)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.TextPrimaryColor)

	lines := make([]string, cfg.ViewportHeight)
	for row := range cfg.ViewportHeight {
		if row >= thumbStart && row < thumbStart+thumbHeight {
			lines[row] = thumbStyle.Render(string(scrollbarThumbChar))
		} else {
			lines[row] = trackStyle.Render(string(scrollbarTrackChar))
		}
	}

	return strings.Join(lines, "\n")
}
