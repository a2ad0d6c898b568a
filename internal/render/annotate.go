package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/gitscope/gitscope/internal/blame"
	"github.com/gitscope/gitscope/internal/syntax"
	"github.com/gitscope/gitscope/internal/theme"
	"github.com/gitscope/gitscope/internal/viewport"
)

const (
	annotateShaWidth    = 8
	annotateAuthorWidth = 14
	annotateDateFormat  = "2006-01-02"
)

// Annotator renders blame-annotated source lines with a heatmap swatch in
// the gutter. The aggregate is computed once from the full blame set; each
// line render is then a constant-time lookup.
type Annotator struct {
	highlighter *syntax.Highlighter
	lines       []blame.Line
	agg         *blame.Aggregate
	mode        blame.Mode
	lang        string
	width       int
}

// NewAnnotator builds an annotator over a blame result for one file.
func NewAnnotator(h *syntax.Highlighter, path string, lines []blame.Line) *Annotator {
	return &Annotator{
		highlighter: h,
		lines:       lines,
		agg:         blame.NewAggregate(lines),
		mode:        blame.ModeAge,
		lang:        syntax.DetectLanguage(path),
		width:       80,
	}
}

// SetMode switches the heatmap dimension.
func (a *Annotator) SetMode(mode blame.Mode) { a.mode = mode }

// Mode reports the active heatmap dimension.
func (a *Annotator) Mode() blame.Mode { return a.mode }

// SetWidth sets the render width in terminal cells.
func (a *Annotator) SetWidth(width int) { a.width = max(width, 20) }

// TotalLines reports the number of annotated lines.
func (a *Annotator) TotalLines() int { return len(a.lines) }

// Aggregate exposes the precomputed blame statistics.
func (a *Annotator) Aggregate() *blame.Aggregate { return a.agg }

// Lines renders the annotated rows inside the window.
func (a *Annotator) Lines(win viewport.Window) []string {
	out := make([]string, 0, win.Len())
	for i := win.Start; i < win.End && i < len(a.lines); i++ {
		out = append(out, a.Line(i))
	}
	return out
}

// Line renders a single annotated row: heat swatch, short SHA, author,
// date, line number, then the highlighted content.
func (a *Annotator) Line(index int) string {
	if index < 0 || index >= len(a.lines) {
		return ""
	}
	line := a.lines[index]

	intensity := a.agg.Intensity(line, a.mode)
	var swatchColor lipgloss.Color
	switch a.mode {
	case blame.ModeAuthor:
		swatchColor = theme.AuthorColor(intensity)
	case blame.ModeAge:
		// Age intensity puts the newest revision at 0; flip it so recent
		// lines land on the hot end of the gradient.
		swatchColor = theme.HeatColor(1 - intensity)
	default:
		swatchColor = theme.HeatColor(intensity)
	}
	swatch := lipgloss.NewStyle().Foreground(swatchColor).Render("▌")

	sha := line.SHA
	if len(sha) > annotateShaWidth {
		sha = sha[:annotateShaWidth]
	}

	author := runewidth.Truncate(line.Author, annotateAuthorWidth, "…")
	author = runewidth.FillRight(author, annotateAuthorWidth)

	meta := fmt.Sprintf("%s %s %s %4d ",
		theme.BlameShaStyle.Render(sha),
		theme.BlameAuthorStyle.Render(author),
		theme.BlameDateStyle.Render(line.Time.Format(annotateDateFormat)),
		line.LineNumber,
	)

	gutter := swatch + " " + meta
	contentWidth := max(a.width-lipgloss.Width(gutter), 1)

	spans := a.highlighter.Highlight(a.lang, line.Content)
	var sb strings.Builder
	for _, span := range spans {
		style := theme.LineContextStyle
		if span.Style.Color != "" {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(span.Style.Color))
			if span.Style.Bold {
				style = style.Bold(true)
			}
			if span.Style.Italic {
				style = style.Italic(true)
			}
		}
		sb.WriteString(style.Render(span.Text))
	}
	content := sb.String()
	if lipgloss.Width(content) > contentWidth {
		content = ansi.Truncate(content, contentWidth, "…")
	}

	return gutter + content
}

// StatusLine summarizes the blame set for the footer: mode, commit span,
// and author count.
func (a *Annotator) StatusLine() string {
	if a.agg.Lines() == 0 {
		return "no blame data"
	}
	return fmt.Sprintf("%s │ %s → %s │ %d authors",
		a.mode,
		a.agg.Oldest().Format(annotateDateFormat),
		a.agg.Newest().Format(annotateDateFormat),
		a.agg.Authors(),
	)
}
