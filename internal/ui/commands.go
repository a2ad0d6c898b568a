package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gitscope/gitscope/internal/blame"
	"github.com/gitscope/gitscope/internal/cachemanager"
	"github.com/gitscope/gitscope/internal/diff"
	"github.com/gitscope/gitscope/internal/git"
)

// loadTTL bounds how long parsed diffs and blame sets stay cached between
// view switches before a fresh git invocation.
const loadTTL = 2 * time.Minute

// DiffLoadedMsg carries a parsed diff back to the model.
type DiffLoadedMsg struct {
	Files []diff.File
	Err   error
}

// BlameLoadedMsg carries a parsed blame set back to the model.
type BlameLoadedMsg struct {
	Path  string
	Lines []blame.Line
	Err   error
}

// Loader wraps the git executor with read-through caches so switching
// between the diff and annotate views does not re-invoke git.
type Loader struct {
	executor git.Executor
	diffs    *cachemanager.ReadThroughCache[string, []diff.File, string]
	blames   *cachemanager.ReadThroughCache[string, []blame.Line, blameInput]
}

type blameInput struct {
	ref  string
	path string
}

// NewLoader creates a Loader around a git executor.
func NewLoader(executor git.Executor) *Loader {
	l := &Loader{executor: executor}

	diffCache := cachemanager.NewInMemoryCacheManager[string, []diff.File](
		"diff", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	l.diffs = cachemanager.NewReadThroughCache(diffCache, l.fetchDiff, false)

	blameCache := cachemanager.NewInMemoryCacheManager[string, []blame.Line](
		"blame", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	l.blames = cachemanager.NewReadThroughCache(blameCache, l.fetchBlame, false)

	return l
}

// LoadDiff returns a command that loads and parses the diff for a ref.
// An empty ref loads the working directory diff against HEAD.
func (l *Loader) LoadDiff(ref string) tea.Cmd {
	return func() tea.Msg {
		files, err := l.diffs.Get(context.Background(), "diff:"+ref, ref, loadTTL)
		return DiffLoadedMsg{Files: files, Err: err}
	}
}

// LoadBlame returns a command that loads and parses blame for a file.
func (l *Loader) LoadBlame(ref, path string) tea.Cmd {
	return func() tea.Msg {
		key := fmt.Sprintf("blame:%s:%s", ref, path)
		lines, err := l.blames.Get(context.Background(), key, blameInput{ref: ref, path: path}, loadTTL)
		return BlameLoadedMsg{Path: path, Lines: lines, Err: err}
	}
}

// Invalidate drops the cached diff for a ref so the next load re-invokes git.
func (l *Loader) Invalidate(ref string) {
	_ = l.diffs.Invalidate(context.Background(), "diff:"+ref)
}

// InvalidateBlame drops the cached blame for a file so the next load
// re-invokes git.
func (l *Loader) InvalidateBlame(ref, path string) {
	_ = l.blames.Invalidate(context.Background(), fmt.Sprintf("blame:%s:%s", ref, path))
}

func (l *Loader) fetchDiff(_ context.Context, ref string) ([]diff.File, error) {
	var output string
	var err error
	if ref == "" {
		output, err = l.executor.GetWorkingDirDiff()
	} else {
		output, err = l.executor.GetDiff(ref)
	}
	if err != nil {
		return nil, err
	}
	return diff.Parse(output)
}

func (l *Loader) fetchBlame(_ context.Context, input blameInput) ([]blame.Line, error) {
	return l.executor.Blame(input.ref, input.path)
}
