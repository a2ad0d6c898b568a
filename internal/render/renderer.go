package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gitscope/gitscope/internal/align"
	"github.com/gitscope/gitscope/internal/diff"
	"github.com/gitscope/gitscope/internal/syntax"
	"github.com/gitscope/gitscope/internal/theme"
	"github.com/gitscope/gitscope/internal/viewport"
)

// lineNumberWidth is the width reserved for line numbers in the gutter.
const lineNumberWidth = 4

// Side-by-side rendering constants.
const (
	sbsSeparator   = "│"
	sbsGutterWidth = 5 // "NNNN " for line numbers
)

// Options configures a Renderer.
type Options struct {
	// CacheCapacity is the max number of rendered rows to cache.
	CacheCapacity int
	// CacheMaxBytes is the max memory for the render cache in bytes.
	CacheMaxBytes int64
	// HighlightCapacity is the max number of highlight cache entries.
	HighlightCapacity int
	// View selects unified or side-by-side rendering.
	View ViewMode
	// Intra selects intra-line change emphasis.
	Intra IntraMode
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CacheCapacity:     DefaultCacheCapacity,
		CacheMaxBytes:     DefaultMaxCacheBytes,
		HighlightCapacity: syntax.DefaultCacheCapacity,
		View:              ViewModeUnified,
		Intra:             IntraChars,
	}
}

// Renderer turns content rows into styled terminal lines. It owns the
// highlight cache and the render cache; both are confined to the render
// loop's goroutine but carry internal locks so misuse degrades rather than
// races.
type Renderer struct {
	highlighter *syntax.Highlighter
	cache       *Cache
	width       int
	view        ViewMode
	intra       IntraMode

	// styleMemo memoizes lipgloss styles per token style so the hot path
	// does not rebuild them per span.
	styleMemo map[styleKey]lipgloss.Style
}

type styleKey struct {
	style      syntax.Style
	fallback   string // base color applied when the token has none
	emphasized bool
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		highlighter: syntax.NewHighlighter(opts.HighlightCapacity),
		cache:       NewCacheWithLimits(opts.CacheCapacity, opts.CacheMaxBytes),
		view:        opts.View,
		intra:       opts.Intra,
		styleMemo:   make(map[styleKey]lipgloss.Style),
	}
}

// SetWidth updates the render width. Width changes invalidate the render
// cache since truncation depends on it; the highlight cache is untouched.
func (r *Renderer) SetWidth(width int) {
	if r.width != width {
		r.width = width
		r.cache.Clear()
	}
}

// Width returns the current render width.
func (r *Renderer) Width() int { return r.width }

// View returns the current view mode.
func (r *Renderer) View() ViewMode { return r.view }

// SetView switches between unified and side-by-side rendering.
// The render cache keys on view mode, so no flush is needed.
func (r *Renderer) SetView(mode ViewMode) { r.view = mode }

// Intra returns the current intra-line mode.
func (r *Renderer) Intra() IntraMode { return r.intra }

// SetIntra switches the intra-line emphasis mode.
func (r *Renderer) SetIntra(mode IntraMode) { r.intra = mode }

// Cache exposes the render cache for metrics reporting.
func (r *Renderer) Cache() *Cache { return r.cache }

// HighlightMetrics returns the highlight cache metrics.
func (r *Renderer) HighlightMetrics() syntax.CacheMetrics {
	return r.highlighter.Cache().Metrics()
}

// Highlighter exposes the highlighter for annotate rendering.
func (r *Renderer) Highlighter() *syntax.Highlighter { return r.highlighter }

// Lines renders the rows of a window into styled terminal lines, one per
// window index, consulting the render cache per row.
func (r *Renderer) Lines(c *Content, win viewport.Window) []string {
	if r.width <= 0 || win.Len() <= 0 {
		return nil
	}

	out := make([]string, 0, win.Len())
	for i := win.Start; i < win.End; i++ {
		out = append(out, r.Line(c, i))
	}
	return out
}

// Line renders a single row by index for the current view mode, cached.
func (r *Renderer) Line(c *Content, index int) string {
	if r.view == ViewModeSideBySide {
		if index < 0 || index >= len(c.sideBySide) {
			return ""
		}
		sr := c.sideBySide[index]
		key := Key{Path: sr.path, HunkIndex: sr.hunkIndex, LineIndex: index, Width: r.width, View: r.view, Intra: r.intra}
		if cached, ok := r.cache.Get(key); ok {
			return cached
		}
		rendered := r.renderSideBySide(sr)
		r.cache.Put(key, rendered)
		return rendered
	}

	if index < 0 || index >= len(c.unified) {
		return ""
	}
	row := c.unified[index]
	key := Key{Path: row.path, HunkIndex: row.hunkIndex, LineIndex: index, Width: r.width, View: r.view, Intra: r.intra}
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}
	rendered := r.renderUnified(row)
	r.cache.Put(key, rendered)
	return rendered
}

// renderUnified renders one unified-view row.
func (r *Renderer) renderUnified(row row) string {
	if row.isFileHeader {
		return r.renderFileHeader(row.fileHeader, row.adds, row.dels, row.binary)
	}

	gutterWidth := lineNumberWidth + 3 // "NNNN | "
	contentWidth := max(r.width-gutterWidth, 1)

	switch row.kind {
	case diff.LineHunkHeader:
		header := row.hunkHeader
		if len(header) > r.width {
			header = ansi.Truncate(header, r.width, "...")
		}
		return theme.LineHunkStyle.Render(header)

	case diff.LineAddition:
		gutter := formatGutter(0, row.newNum)
		body := r.renderBody(row, "+", theme.LineAddStyle, theme.EmphasisAddStyle, theme.DiffAdditionColor)
		return theme.LineGutterStyle.Render(gutter) + truncateTo(body, contentWidth)

	case diff.LineDeletion:
		gutter := formatGutter(row.oldNum, 0)
		body := r.renderBody(row, "-", theme.LineDelStyle, theme.EmphasisDelStyle, theme.DiffDeletionColor)
		return theme.LineGutterStyle.Render(gutter) + truncateTo(body, contentWidth)

	default: // context
		gutter := formatGutter(row.oldNum, row.newNum)
		spans := r.highlighter.Highlight(row.lang, row.content)
		body := theme.LineContextStyle.Render(" ") + r.renderSpans(spans, nil, theme.DiffContextColor)
		return theme.LineGutterStyle.Render(gutter) + truncateTo(body, contentWidth)
	}
}

// renderBody renders the prefix and content of an addition or deletion
// line, applying syntax spans and, when a counterpart exists, intra-line
// change emphasis in the active mode.
func (r *Renderer) renderBody(row row, prefix string, lineStyle, emphasisStyle lipgloss.Style, baseColor lipgloss.AdaptiveColor) string {
	prefixStr := lineStyle.Render(prefix)

	if r.intra == IntraWords && row.hasCounterpart {
		// Word mode renders the diffmatchpatch segments directly: syntax
		// tokens would fight the coarser segment boundaries. Over-long
		// lines get nil segments and fall through to line-level styling.
		if segments := wordSegments(row); segments != nil {
			return prefixStr + renderSegments(segments, lineStyle, emphasisStyle)
		}
	}

	spans := r.highlighter.Highlight(row.lang, row.content)

	var ranges []align.Range
	if r.intra == IntraChars && row.hasCounterpart {
		ranges = charRanges(row)
	}

	return prefixStr + r.renderSpans(spans, ranges, baseColor)
}

// charRanges computes this row's changed character ranges against its
// counterpart. Deletions are the old side of the pair, additions the new.
func charRanges(row row) []align.Range {
	if row.kind == diff.LineDeletion {
		oldChanged, _ := align.Chars(row.content, row.counterpart)
		return oldChanged
	}
	_, newChanged := align.Chars(row.counterpart, row.content)
	return newChanged
}

// wordSegments computes this row's word-level segments against its
// counterpart. Lines past the word-diff length bound return nil so the
// caller can fall back to line-level styling instead of handing
// diffmatchpatch an arbitrarily long input.
func wordSegments(row row) []align.Segment {
	if len(row.content) > align.WordMaxLineLength || len(row.counterpart) > align.WordMaxLineLength {
		return nil
	}
	if row.kind == diff.LineDeletion {
		return align.Words(row.content, row.counterpart).OldSegments
	}
	return align.Words(row.counterpart, row.content).NewSegments
}

// renderSegments renders word-diff segments, styling changed segments with
// the emphasis style and unchanged ones with the line style.
func renderSegments(segments []align.Segment, unchangedStyle, changedStyle lipgloss.Style) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind == align.SegmentUnchanged {
			sb.WriteString(unchangedStyle.Render(seg.Text))
		} else {
			sb.WriteString(changedStyle.Render(seg.Text))
		}
	}
	return sb.String()
}

// renderSpans renders a syntax span sequence, splitting spans at changed
// range boundaries so emphasis can overlay token styling. baseColor is the
// foreground for spans whose token style carries no color of its own.
func (r *Renderer) renderSpans(spans []syntax.Span, ranges []align.Range, baseColor lipgloss.TerminalColor) string {
	var sb strings.Builder
	pos := 0

	for _, span := range spans {
		if len(ranges) == 0 {
			sb.WriteString(r.styleFor(span.Style, baseColor, false).Render(span.Text))
			pos += len(span.Text)
			continue
		}

		// Split the span wherever emphasis flips.
		start := 0
		emphasized := align.InRanges(pos, ranges)
		for i := 1; i <= len(span.Text); i++ {
			if i == len(span.Text) || align.InRanges(pos+i, ranges) != emphasized {
				text := span.Text[start:i]
				sb.WriteString(r.styleFor(span.Style, baseColor, emphasized).Render(text))
				start = i
				if i < len(span.Text) {
					emphasized = !emphasized
				}
			}
		}
		pos += len(span.Text)
	}

	return sb.String()
}

// styleFor builds (and memoizes) the lipgloss style for a token style with
// the given fallback foreground.
func (r *Renderer) styleFor(s syntax.Style, baseColor lipgloss.TerminalColor, emphasized bool) lipgloss.Style {
	key := styleKey{style: s, fallback: colorKeyString(baseColor), emphasized: emphasized}
	if memo, ok := r.styleMemo[key]; ok {
		return memo
	}

	style := lipgloss.NewStyle()
	if s.Color != "" {
		style = style.Foreground(lipgloss.Color(s.Color))
	} else if baseColor != nil {
		style = style.Foreground(baseColor)
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Italic {
		style = style.Italic(true)
	}
	if emphasized {
		style = style.Bold(true).Underline(true)
	}

	r.styleMemo[key] = style
	return style
}

// colorKeyString derives a memo key from a terminal color.
func colorKeyString(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case lipgloss.Color:
		return string(v)
	case lipgloss.AdaptiveColor:
		return v.Light + "/" + v.Dark
	default:
		return ""
	}
}

// renderFileHeader renders a file header separator row: the path with a
// highlight background, then color-coded stats.
func (r *Renderer) renderFileHeader(path string, adds, dels int, binary bool) string {
	name := path
	maxNameWidth := max(r.width-16, 10)
	if lipgloss.Width(name) > maxNameWidth {
		name = ansi.Truncate(name, maxNameWidth, "…")
	}

	result := theme.FileHeaderStyle.Render(name)
	if binary {
		result += " " + theme.LineGutterStyle.Render("binary")
		return result
	}
	if adds > 0 {
		result += " " + theme.LineAddStyle.Render("+"+strconv.Itoa(adds))
	}
	if dels > 0 {
		result += " " + theme.LineDelStyle.Render("-"+strconv.Itoa(dels))
	}
	return result
}

// renderSideBySide renders one side-by-side row: two gutter+content
// columns joined by a separator.
func (r *Renderer) renderSideBySide(sr sbsRow) string {
	if sr.isFileHeader {
		header := r.renderFileHeader(sr.fileHeader, sr.adds, sr.dels, sr.binary)
		return padRightTo(header, r.width)
	}

	sideWidth := (r.width - 1) / 2
	contentWidth := max(sideWidth-sbsGutterWidth, 1)

	if sr.isHunkHeader {
		header := sr.hunkHeader
		if len(header) > sideWidth {
			header = ansi.Truncate(header, sideWidth, "...")
		}
		return theme.LineHunkStyle.Render(padRightTo(header, sideWidth)) +
			theme.LineGutterStyle.Render(sbsSeparator) +
			strings.Repeat(" ", sideWidth)
	}

	left := r.renderColumn(sr.left, contentWidth, true)
	right := r.renderColumn(sr.right, contentWidth, false)
	return left + theme.LineGutterStyle.Render(sbsSeparator) + right
}

// renderColumn renders one side-by-side column. A nil line renders blank.
func (r *Renderer) renderColumn(line *diff.Line, contentWidth int, isOld bool) string {
	if line == nil {
		return strings.Repeat(" ", sbsGutterWidth+contentWidth)
	}

	var lineNum int
	var style lipgloss.Style
	switch line.Kind {
	case diff.LineDeletion:
		lineNum = line.OldNum
		style = theme.LineDelStyle
	case diff.LineAddition:
		lineNum = line.NewNum
		style = theme.LineAddStyle
	default:
		style = theme.LineContextStyle
		if isOld {
			lineNum = line.OldNum
		} else {
			lineNum = line.NewNum
		}
	}

	content := style.Render(line.Content)
	if lipgloss.Width(content) > contentWidth {
		content = ansi.Truncate(content, contentWidth, "")
	}
	if pad := contentWidth - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}

	return theme.LineGutterStyle.Render(formatSideBySideGutter(lineNum)) + content
}

// formatGutter formats the unified gutter. Additions use the new line
// number, deletions the old, context the new.
func formatGutter(oldNum, newNum int) string {
	if newNum > 0 {
		return padNumber(newNum) + " | "
	}
	if oldNum > 0 {
		return padNumber(oldNum) + " | "
	}
	return "     | "
}

// formatSideBySideGutter formats a line number for the 5-char sbs gutter.
func formatSideBySideGutter(lineNum int) string {
	if lineNum == 0 {
		return "     "
	}
	return padNumber(lineNum) + " "
}

func padNumber(n int) string {
	s := strconv.Itoa(n)
	if len(s) < lineNumberWidth {
		s = strings.Repeat(" ", lineNumberWidth-len(s)) + s
	}
	return s
}

// padRightTo pads a styled string with spaces to reach the target width.
func padRightTo(s string, width int) string {
	current := lipgloss.Width(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}

// truncateTo truncates a styled string to a display width.
func truncateTo(s string, width int) string {
	if lipgloss.Width(s) > width {
		return ansi.Truncate(s, width, "")
	}
	return s
}
