// Package render composes the diff model, the syntax highlighter, the
// inline aligner, the blame heatmap, and the windower into styled output
// lines, caching rendered rows so scrolling stays cheap on large files.
package render

import (
	"github.com/gitscope/gitscope/internal/diff"
	"github.com/gitscope/gitscope/internal/syntax"
)

// ViewMode represents the diff display mode.
type ViewMode int

const (
	// ViewModeUnified shows changes in a single column with +/- markers.
	ViewModeUnified ViewMode = iota
	// ViewModeSideBySide shows old and new versions in parallel columns.
	ViewModeSideBySide
)

// String returns a human-readable name for the view mode.
func (m ViewMode) String() string {
	switch m {
	case ViewModeUnified:
		return "UNIFIED"
	case ViewModeSideBySide:
		return "SIDE-BY-SIDE"
	default:
		return "UNKNOWN"
	}
}

// IntraMode selects intra-line change emphasis for modification pairs.
type IntraMode int

const (
	// IntraOff renders modified lines with line-level styling only.
	IntraOff IntraMode = iota
	// IntraChars emphasizes character-level changed ranges (LCS).
	IntraChars
	// IntraWords emphasizes word-level changed segments.
	IntraWords
)

// row is one renderable line of unified diff content, carrying everything
// renderLine needs so no hunk traversal happens per frame.
type row struct {
	kind         diff.LineKind
	oldNum       int
	newNum       int
	content      string
	hunkHeader   string // only set for hunk header rows
	isFileHeader bool
	fileHeader   string
	adds         int  // file stats, only set on file header rows
	dels         int
	binary       bool
	path         string // source file path (cache key)
	lang         string // language identifier for tokenization
	hunkIndex    int

	// counterpart is the paired line's content for modification pairs;
	// hasCounterpart gates intra-line alignment.
	counterpart    string
	hasCounterpart bool
}

// sbsRow is one renderable side-by-side row.
type sbsRow struct {
	left         *diff.Line
	right        *diff.Line
	isHunkHeader bool
	hunkHeader   string
	isFileHeader bool
	fileHeader   string
	adds         int
	dels         int
	binary       bool
	path         string
	lang         string
	hunkIndex    int
}

// Content holds the precomputed row arrays for one diff, for both view
// modes, so switching views is free. Content is immutable once built; if
// the underlying diff changes, the owning view builds a new Content.
type Content struct {
	unified    []row
	sideBySide []sbsRow
}

// NewContent flattens parsed diff files into renderable rows. File header
// separator rows are inserted for multi-file diffs, matching the unified
// output of the upstream tool.
func NewContent(files []diff.File) *Content {
	c := &Content{}

	for i, file := range files {
		path := file.Path()
		lang := syntax.DetectLanguage(path)

		if len(files) > 1 {
			c.unified = append(c.unified, row{
				isFileHeader: true,
				fileHeader:   path,
				adds:         file.Additions,
				dels:         file.Deletions,
				binary:       file.IsBinary,
				path:         path,
				hunkIndex:    -1,
			})
			c.sideBySide = append(c.sideBySide, sbsRow{
				isFileHeader: true,
				fileHeader:   path,
				adds:         file.Additions,
				dels:         file.Deletions,
				binary:       file.IsBinary,
				path:         path,
				hunkIndex:    -1,
			})
		}

		for hunkIdx := range file.Hunks {
			hunk := file.Hunks[hunkIdx]

			// Counterpart contents for modification pairs, keyed by the
			// line's index within the hunk.
			counterparts := make(map[int]string)
			for _, pair := range diff.ModificationPairs(hunk) {
				counterparts[pair[0]] = hunk.Lines[pair[1]].Content
				counterparts[pair[1]] = hunk.Lines[pair[0]].Content
			}

			for lineIdx, line := range hunk.Lines {
				r := row{
					kind:      line.Kind,
					oldNum:    line.OldNum,
					newNum:    line.NewNum,
					content:   line.Content,
					path:      path,
					lang:      lang,
					hunkIndex: hunkIdx,
				}
				if line.Kind == diff.LineHunkHeader {
					r.hunkHeader = hunk.Header
				}
				if counterpart, ok := counterparts[lineIdx]; ok {
					r.counterpart = counterpart
					r.hasCounterpart = true
				}
				c.unified = append(c.unified, r)
			}

			for _, pair := range diff.AlignHunk(hunk) {
				sr := sbsRow{
					left:      pair.Left,
					right:     pair.Right,
					path:      path,
					lang:      lang,
					hunkIndex: hunkIdx,
				}
				if pair.IsHunkHeader() {
					sr.isHunkHeader = true
					sr.hunkHeader = hunk.Header
				}
				c.sideBySide = append(c.sideBySide, sr)
			}
		}

		// Blank separator between files.
		if len(files) > 1 && i < len(files)-1 {
			c.unified = append(c.unified, row{kind: diff.LineContext, path: path, hunkIndex: -2})
			c.sideBySide = append(c.sideBySide, sbsRow{path: path, hunkIndex: -2})
		}
	}

	return c
}

// FileOffsets returns the row index where each file starts in the given
// view mode, in file order. Single-file diffs yield one zero offset.
func (c *Content) FileOffsets(mode ViewMode) []int {
	var offsets []int
	lastPath := ""
	if mode == ViewModeSideBySide {
		for i, r := range c.sideBySide {
			if r.path != lastPath {
				offsets = append(offsets, i)
				lastPath = r.path
			}
		}
		return offsets
	}
	for i, r := range c.unified {
		if r.path != lastPath {
			offsets = append(offsets, i)
			lastPath = r.path
		}
	}
	return offsets
}

// PathAt returns the source file path for a row index, or "" when the
// index is out of range.
func (c *Content) PathAt(mode ViewMode, index int) string {
	if mode == ViewModeSideBySide {
		if index < 0 || index >= len(c.sideBySide) {
			return ""
		}
		return c.sideBySide[index].path
	}
	if index < 0 || index >= len(c.unified) {
		return ""
	}
	return c.unified[index].path
}

// TotalLines returns the line count for the given view mode.
func (c *Content) TotalLines(mode ViewMode) int {
	if mode == ViewModeSideBySide {
		return len(c.sideBySide)
	}
	return len(c.unified)
}
