package viewport

// Viewport tracks a scroll position over line-addressed content. It holds
// no content itself; the render layer asks it for the visible range each
// frame and renders only those lines.
type Viewport struct {
	totalLines   int
	scrollOffset int // first visible line index
	height       int // visible lines
	width        int
	config       Config
}

// New creates a Viewport over content of the given total line count.
func New(totalLines int, config Config) *Viewport {
	if config.LineHeight <= 0 {
		config.LineHeight = 1
	}
	return &Viewport{totalLines: totalLines, config: config}
}

// SetSize updates the viewport dimensions and re-clamps the scroll
// position so it remains valid after a resize.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clamp()
}

// SetTotalLines updates the content length (e.g. after switching files).
func (v *Viewport) SetTotalLines(n int) {
	if n < 0 {
		n = 0
	}
	v.totalLines = n
	v.clamp()
}

// Height returns the viewport height in lines.
func (v *Viewport) Height() int { return v.height }

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// TotalLines returns the content length in lines.
func (v *Viewport) TotalLines() int { return v.totalLines }

// YOffset returns the current scroll position (first visible line index).
func (v *Viewport) YOffset() int { return v.scrollOffset }

// SetYOffset sets the scroll position, clamped to the valid range.
func (v *Viewport) SetYOffset(offset int) {
	v.scrollOffset = offset
	v.clamp()
}

// ScrollUp scrolls up by n lines.
func (v *Viewport) ScrollUp(n int) {
	v.scrollOffset -= n
	v.clamp()
}

// ScrollDown scrolls down by n lines.
func (v *Viewport) ScrollDown(n int) {
	v.scrollOffset += n
	v.clamp()
}

// HalfPageUp scrolls up by half a page.
func (v *Viewport) HalfPageUp() { v.ScrollUp(v.height / 2) }

// HalfPageDown scrolls down by half a page.
func (v *Viewport) HalfPageDown() { v.ScrollDown(v.height / 2) }

// PageUp scrolls up by one page.
func (v *Viewport) PageUp() { v.ScrollUp(v.height) }

// PageDown scrolls down by one page.
func (v *Viewport) PageDown() { v.ScrollDown(v.height) }

// GotoTop scrolls to the top of the content.
func (v *Viewport) GotoTop() { v.scrollOffset = 0 }

// GotoBottom scrolls to the bottom of the content.
func (v *Viewport) GotoBottom() { v.scrollOffset = v.maxOffset() }

// AtTop returns true if scrolled to the top.
func (v *Viewport) AtTop() bool { return v.scrollOffset == 0 }

// AtBottom returns true if scrolled to the bottom.
func (v *Viewport) AtBottom() bool { return v.scrollOffset >= v.maxOffset() }

// ScrollPercent returns the scroll position as a fraction in [0, 1].
// Returns 0 when the content fits within the viewport.
func (v *Viewport) ScrollPercent() float64 {
	maxOffset := v.maxOffset()
	if maxOffset <= 0 {
		return 0
	}
	return float64(v.scrollOffset) / float64(maxOffset)
}

// VisibleRange returns the half-open range of lines currently on screen,
// without overscan.
func (v *Viewport) VisibleRange() Window {
	end := v.scrollOffset + v.height
	if end > v.totalLines {
		end = v.totalLines
	}
	return Window{Start: v.scrollOffset, End: end}
}

// RenderWindow returns the half-open range of lines to render this frame,
// overscan included, via the windower geometry.
func (v *Viewport) RenderWindow() Window {
	return v.config.Compute(v.scrollOffset*v.config.LineHeight, v.height*v.config.LineHeight, v.totalLines)
}

// EnsureVisible scrolls the minimum amount needed to bring a line on
// screen. Returns true if the offset changed.
func (v *Viewport) EnsureVisible(line int) bool {
	if line < 0 || line >= v.totalLines {
		return false
	}

	before := v.scrollOffset
	if line < v.scrollOffset {
		v.scrollOffset = line
	}
	if line >= v.scrollOffset+v.height {
		v.scrollOffset = line - v.height + 1
	}
	v.clamp()
	return v.scrollOffset != before
}

// clamp keeps the scroll offset within [0, maxOffset].
func (v *Viewport) clamp() {
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
	if maxOffset := v.maxOffset(); v.scrollOffset > maxOffset {
		v.scrollOffset = maxOffset
	}
}

// maxOffset is totalLines - height, never negative.
func (v *Viewport) maxOffset() int {
	if v.totalLines <= v.height {
		return 0
	}
	return v.totalLines - v.height
}
