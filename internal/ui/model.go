// Package ui contains the terminal viewer: a diff view with syntax
// highlighting and intra-line emphasis, and an annotate view with a blame
// heatmap gutter.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gitscope/gitscope/internal/blame"
	"github.com/gitscope/gitscope/internal/config"
	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/keys"
	"github.com/gitscope/gitscope/internal/log"
	"github.com/gitscope/gitscope/internal/render"
	"github.com/gitscope/gitscope/internal/theme"
	"github.com/gitscope/gitscope/internal/viewport"
)

// statusBarHeight is the number of rows the status bar occupies.
const statusBarHeight = 1

// activeView indicates which view has the screen.
type activeView int

const (
	// viewDiff shows the diff view.
	viewDiff activeView = iota
	// viewAnnotate shows the blame heatmap view.
	viewAnnotate
)

// Model is the viewer state.
type Model struct {
	width, height int
	cfg           config.Config

	view activeView

	// Diff view state
	content  *render.Content
	renderer *render.Renderer
	diffVp   *viewport.Viewport

	// Annotate view state
	annotator *render.Annotator
	annVp     *viewport.Viewport
	blamePath string

	// Dependencies
	loader    *Loader
	ref       string
	startPath string // non-empty when launched directly into annotate

	showStatusBar bool
	showHelp      bool
	loading       bool
	err           error
}

var _ tea.Model = Model{}

// New creates a viewer model. The diff is loaded asynchronously from Init.
func New(cfg config.Config, executor git.Executor, ref string) Model {
	opts := render.Options{
		CacheCapacity:     cfg.Cache.RenderEntries,
		CacheMaxBytes:     int64(cfg.Cache.RenderBytes),
		HighlightCapacity: cfg.Cache.HighlightEntries,
		View:              parseViewMode(cfg.UI.View),
		Intra:             parseIntraMode(cfg.UI.Intra),
	}

	vpConfig := viewport.DefaultConfig()
	if cfg.UI.BufferLines > 0 {
		vpConfig.BufferLines = cfg.UI.BufferLines
	}

	return Model{
		cfg:           cfg,
		view:          viewDiff,
		renderer:      render.NewRenderer(opts),
		diffVp:        viewport.New(0, vpConfig),
		annVp:         viewport.New(0, vpConfig),
		loader:        NewLoader(executor),
		ref:           ref,
		showStatusBar: cfg.UI.ShowStatusBar,
		loading:       true,
	}
}

// NewAnnotate creates a viewer model that opens directly in the annotate
// view for one file.
func NewAnnotate(cfg config.Config, executor git.Executor, ref, path string) Model {
	m := New(cfg, executor, ref)
	m.startPath = path
	return m
}

// Init kicks off the initial load: the diff, or blame when the model was
// created for a single file's annotate view.
func (m Model) Init() tea.Cmd {
	if m.startPath != "" {
		return m.loader.LoadBlame(m.ref, m.startPath)
	}
	return m.loader.LoadDiff(m.ref)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.SetWidth(m.contentWidth())
		m.diffVp.SetSize(m.contentWidth(), m.contentHeight())
		m.annVp.SetSize(m.contentWidth(), m.contentHeight())
		if m.annotator != nil {
			m.annotator.SetWidth(m.contentWidth())
		}
		return m, nil

	case DiffLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			log.ErrorErr(log.CatUI, "diff load failed", msg.Err, "ref", m.ref)
			return m, nil
		}
		m.err = nil
		m.content = render.NewContent(msg.Files)
		m.diffVp.SetTotalLines(m.content.TotalLines(m.renderer.View()))
		m.diffVp.GotoTop()
		log.Info(log.CatUI, "diff loaded", "files", len(msg.Files), "lines", m.content.TotalLines(m.renderer.View()))
		return m, nil

	case BlameLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			log.ErrorErr(log.CatUI, "blame load failed", msg.Err, "path", msg.Path)
			return m, nil
		}
		m.err = nil
		m.blamePath = msg.Path
		m.annotator = render.NewAnnotator(m.renderer.Highlighter(), msg.Path, msg.Lines)
		m.annotator.SetMode(blame.ParseMode(m.cfg.Blame.Mode))
		m.annotator.SetWidth(m.contentWidth())
		m.annVp.SetTotalLines(m.annotator.TotalLines())
		m.annVp.GotoTop()
		m.view = viewAnnotate
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	vp := m.activeViewport()

	switch {
	case key.Matches(msg, keys.Viewer.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Viewer.Help):
		m.showHelp = true

	case key.Matches(msg, keys.Viewer.Up):
		vp.ScrollUp(1)
	case key.Matches(msg, keys.Viewer.Down):
		vp.ScrollDown(1)
	case key.Matches(msg, keys.Viewer.PageUp):
		vp.PageUp()
	case key.Matches(msg, keys.Viewer.PageDown):
		vp.PageDown()
	case key.Matches(msg, keys.Viewer.HalfPageUp):
		vp.HalfPageUp()
	case key.Matches(msg, keys.Viewer.HalfPageDown):
		vp.HalfPageDown()
	case key.Matches(msg, keys.Viewer.Top):
		vp.GotoTop()
	case key.Matches(msg, keys.Viewer.Bottom):
		vp.GotoBottom()

	case key.Matches(msg, keys.Viewer.NextFile):
		m.jumpFile(1)
	case key.Matches(msg, keys.Viewer.PrevFile):
		m.jumpFile(-1)

	case key.Matches(msg, keys.Viewer.ToggleView):
		if m.view == viewDiff && m.content != nil {
			m.toggleViewMode()
		}

	case key.Matches(msg, keys.Viewer.CycleIntra):
		if m.view == viewDiff {
			m.renderer.SetIntra(nextIntraMode(m.renderer.Intra()))
		}

	case key.Matches(msg, keys.Viewer.CycleBlameMode):
		if m.view == viewAnnotate && m.annotator != nil {
			m.annotator.SetMode(nextBlameMode(m.annotator.Mode()))
		}

	case key.Matches(msg, keys.Viewer.ToggleAnnotate):
		return m.toggleAnnotate()

	case key.Matches(msg, keys.Viewer.Refresh):
		return m.refresh()

	case key.Matches(msg, keys.Viewer.ToggleStatus):
		m.showStatusBar = !m.showStatusBar
		m.diffVp.SetSize(m.contentWidth(), m.contentHeight())
		m.annVp.SetSize(m.contentWidth(), m.contentHeight())
	}

	return m, nil
}

// toggleViewMode flips unified and side-by-side, preserving the scroll
// position proportionally since the two modes have different line counts.
func (m *Model) toggleViewMode() {
	percent := m.diffVp.ScrollPercent()

	next := render.ViewModeSideBySide
	if m.renderer.View() == render.ViewModeSideBySide {
		next = render.ViewModeUnified
	}
	m.renderer.SetView(next)

	total := m.content.TotalLines(next)
	m.diffVp.SetTotalLines(total)
	m.diffVp.SetYOffset(int(percent * float64(total)))
}

// toggleAnnotate switches between diff and annotate views, loading blame
// for the file under the cursor on first entry.
func (m Model) toggleAnnotate() (tea.Model, tea.Cmd) {
	if m.view == viewAnnotate {
		// Launched directly into annotate: there is no diff to go back to.
		if m.content == nil {
			return m, nil
		}
		m.view = viewDiff
		return m, nil
	}
	if m.content == nil {
		return m, nil
	}

	path := m.content.PathAt(m.renderer.View(), m.diffVp.YOffset())
	if path == "" {
		return m, nil
	}

	if m.annotator != nil && m.blamePath == path {
		m.view = viewAnnotate
		return m, nil
	}

	m.loading = true
	return m, m.loader.LoadBlame(m.ref, path)
}

// refresh drops the active view's cached load and re-invokes git, picking
// up changes made outside the viewer.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.view == viewAnnotate && m.blamePath != "" {
		m.loader.InvalidateBlame(m.ref, m.blamePath)
		m.loading = true
		return m, m.loader.LoadBlame(m.ref, m.blamePath)
	}
	m.loader.Invalidate(m.ref)
	m.loading = true
	return m, m.loader.LoadDiff(m.ref)
}

// jumpFile scrolls to the next or previous file boundary.
func (m *Model) jumpFile(direction int) {
	if m.view != viewDiff || m.content == nil {
		return
	}

	offsets := m.content.FileOffsets(m.renderer.View())
	if len(offsets) == 0 {
		return
	}

	current := m.diffVp.YOffset()
	if direction > 0 {
		for _, off := range offsets {
			if off > current {
				m.diffVp.SetYOffset(off)
				return
			}
		}
		return
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		if offsets[i] < current {
			m.diffVp.SetYOffset(offsets[i])
			return
		}
	}
	m.diffVp.GotoTop()
}

// View renders the active view.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch {
	case m.err != nil:
		body = renderPlaceholder(m.contentWidth(), m.contentHeight(), m.err.Error(), theme.DiffDeletionColor)
	case m.loading:
		body = renderPlaceholder(m.contentWidth(), m.contentHeight(), "loading…", theme.TextMutedColor)
	case m.view == viewAnnotate && m.annotator != nil:
		body = m.renderAnnotate()
	case m.content != nil:
		body = m.renderDiff()
	default:
		body = renderPlaceholder(m.contentWidth(), m.contentHeight(), "no changes", theme.TextMutedColor)
	}

	if !m.showStatusBar {
		return body
	}
	return body + "\n" + m.renderStatusBar()
}

// renderDiff renders the visible diff rows plus the scrollbar. The render
// window extends past the visible range so scrolling hits warm cache.
func (m Model) renderDiff() string {
	win := m.diffVp.RenderWindow()
	rendered := m.renderer.Lines(m.content, win)

	visible := m.diffVp.VisibleRange()
	lines := sliceWindow(rendered, win, visible, m.contentHeight())

	return m.attachScrollbar(lines, m.content.TotalLines(m.renderer.View()), m.diffVp.YOffset())
}

// renderAnnotate renders the visible annotated rows plus the scrollbar.
func (m Model) renderAnnotate() string {
	win := m.annVp.RenderWindow()
	rendered := m.annotator.Lines(win)

	visible := m.annVp.VisibleRange()
	lines := sliceWindow(rendered, win, visible, m.contentHeight())

	return m.attachScrollbar(lines, m.annotator.TotalLines(), m.annVp.YOffset())
}

// sliceWindow extracts the visible lines from a rendered window and pads
// to the viewport height so the layout stays stable near the end.
func sliceWindow(rendered []string, win, visible viewport.Window, height int) []string {
	lines := make([]string, 0, height)
	for i := visible.Start; i < visible.End; i++ {
		idx := i - win.Start
		if idx >= 0 && idx < len(rendered) {
			lines = append(lines, rendered[idx])
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// attachScrollbar joins the content column with a scrollbar column when the
// content overflows the viewport.
func (m Model) attachScrollbar(lines []string, totalLines, offset int) string {
	content := strings.Join(lines, "\n")

	if totalLines <= m.contentHeight() {
		return content
	}

	bar := RenderScrollbar(ScrollbarConfig{
		TotalLines:     totalLines,
		ViewportHeight: m.contentHeight(),
		ScrollOffset:   offset,
	})
	return lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
}

// activeViewport returns the viewport for the current view.
func (m *Model) activeViewport() *viewport.Viewport {
	if m.view == viewAnnotate {
		return m.annVp
	}
	return m.diffVp
}

// contentWidth reserves one column for the scrollbar.
func (m Model) contentWidth() int {
	return max(m.width-1, 1)
}

func (m Model) contentHeight() int {
	h := m.height
	if m.showStatusBar {
		h -= statusBarHeight
	}
	return max(h, 1)
}

// renderPlaceholder renders a centered message.
func renderPlaceholder(width, height int, msg string, color lipgloss.AdaptiveColor) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(msg)
}

// parseViewMode maps a config string to a view mode.
func parseViewMode(s string) render.ViewMode {
	if s == "side-by-side" {
		return render.ViewModeSideBySide
	}
	return render.ViewModeUnified
}

// parseIntraMode maps a config string to an intra-line mode.
func parseIntraMode(s string) render.IntraMode {
	switch s {
	case "off":
		return render.IntraOff
	case "words":
		return render.IntraWords
	default:
		return render.IntraChars
	}
}

func nextIntraMode(mode render.IntraMode) render.IntraMode {
	switch mode {
	case render.IntraOff:
		return render.IntraChars
	case render.IntraChars:
		return render.IntraWords
	default:
		return render.IntraOff
	}
}

func nextBlameMode(mode blame.Mode) blame.Mode {
	switch mode {
	case blame.ModeAge:
		return blame.ModeAuthor
	case blame.ModeAuthor:
		return blame.ModeActivity
	default:
		return blame.ModeAge
	}
}
