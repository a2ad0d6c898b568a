// Package viewport bounds rendering cost for large files: the windower
// converts scroll geometry into the half-open range of line indices that
// must actually be tokenized, aligned, and colored this frame, and the
// Viewport type tracks a scroll position over that content. Without this,
// re-rendering a multi-thousand-line file on every scroll event would be
// the dominant cost of the pipeline.
package viewport

import "math"

// DefaultBufferLines is the overscan added on both ends of the visible
// range so small scroll deltas reuse already-rendered content.
const DefaultBufferLines = 50

// Window is an ephemeral half-open range of line indices considered
// visible. It is recomputed on every scroll or resize and never persisted.
type Window struct {
	Start int // First line index to render (inclusive)
	End   int // One past the last line index to render
}

// Len returns the number of lines in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether a line index falls inside the window.
func (w Window) Contains(line int) bool {
	return line >= w.Start && line < w.End
}

// Config holds the windower geometry constants.
type Config struct {
	// LineHeight is the height of one rendered line in the same unit as
	// the scroll offset and viewport height (1 for terminal rows).
	LineHeight int
	// BufferLines is the overscan added on both ends of the visible range.
	BufferLines int
}

// DefaultConfig returns the geometry used by the terminal renderer.
func DefaultConfig() Config {
	return Config{LineHeight: 1, BufferLines: DefaultBufferLines}
}

// Compute returns the window of lines to render for the given scroll
// offset, viewport height, and total line count. Degenerate inputs are
// clamped, never rejected: the result always satisfies
// 0 <= Start <= End <= totalLines.
func (c Config) Compute(offset, viewportHeight, totalLines int) Window {
	if totalLines <= 0 || viewportHeight <= 0 {
		return Window{}
	}

	lineHeight := c.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	if offset < 0 {
		offset = 0
	}

	start := offset/lineHeight - c.BufferLines
	if start < 0 {
		start = 0
	}

	end := int(math.Ceil(float64(offset+viewportHeight)/float64(lineHeight))) + c.BufferLines
	if end > totalLines {
		end = totalLines
	}

	if start > end {
		start = end
	}
	return Window{Start: start, End: end}
}
