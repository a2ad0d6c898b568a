// Package diff holds the structured model of a parsed file diff: files,
// hunks, and lines. The model is a passive value type; producers are
// responsible for the line-number invariants (additions carry no old line
// number, deletions no new line number, context lines both).
package diff

// LineKind represents the kind of a diff line.
type LineKind int

const (
	LineContext    LineKind = iota // ' ' prefix - unchanged line
	LineAddition                   // '+' prefix - added line
	LineDeletion                   // '-' prefix - deleted line
	LineHunkHeader                 // '@@ ... @@' - hunk marker
)

// String returns a human-readable name for the line kind.
func (k LineKind) String() string {
	switch k {
	case LineContext:
		return "context"
	case LineAddition:
		return "addition"
	case LineDeletion:
		return "deletion"
	case LineHunkHeader:
		return "hunk-header"
	default:
		return "unknown"
	}
}

// Line represents a single rendered row of a diff hunk.
// A zero line number means the number is absent for that side.
type Line struct {
	Kind    LineKind // Addition, Deletion, Context, or HunkHeader
	OldNum  int      // Line number in old file (0 for additions)
	NewNum  int      // Line number in new file (0 for deletions)
	Content string   // Line content without the +/- prefix
}

// Hunk represents a contiguous section of changes in a diff.
// Line ordering is significant and never re-sorted.
type Hunk struct {
	OldStart int    // Starting line number in old file
	OldCount int    // Number of lines from old file
	NewStart int    // Starting line number in new file
	NewCount int    // Number of lines from new file
	Header   string // The @@ line text
	Lines    []Line
}

// Additions returns the number of addition lines in the hunk.
func (h Hunk) Additions() int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind == LineAddition {
			n++
		}
	}
	return n
}

// Deletions returns the number of deletion lines in the hunk.
func (h Hunk) Deletions() int {
	n := 0
	for _, l := range h.Lines {
		if l.Kind == LineDeletion {
			n++
		}
	}
	return n
}

// CountsMatchHeader reports whether the counted additions, deletions, and
// context lines are consistent with the counts encoded in the @@ header.
// Old count covers context+deletions, new count covers context+additions.
func (h Hunk) CountsMatchHeader() bool {
	context := 0
	for _, l := range h.Lines {
		if l.Kind == LineContext {
			context++
		}
	}
	return context+h.Deletions() == h.OldCount && context+h.Additions() == h.NewCount
}

// File represents a single file's changes in a diff.
type File struct {
	OldPath    string // Path in old version (or /dev/null for new files)
	NewPath    string // Path in new version (or /dev/null for deleted files)
	Additions  int    // Count of added lines
	Deletions  int    // Count of deleted lines
	IsBinary   bool   // True if file is binary
	IsRenamed  bool   // True if file was renamed
	IsNew      bool   // True if new file (OldPath = /dev/null)
	IsDeleted  bool   // True if deleted file (NewPath = /dev/null)
	Similarity int    // Rename similarity percentage (0-100)
	Hunks      []Hunk
}

// Path returns the display path for the file: the new path, unless the file
// was deleted, in which case the old path.
func (f File) Path() string {
	if f.IsDeleted {
		return f.OldPath
	}
	return f.NewPath
}

// TotalLines returns the total number of diff lines across all hunks,
// hunk headers included.
func (f File) TotalLines() int {
	n := 0
	for _, h := range f.Hunks {
		n += len(h.Lines)
	}
	return n
}

// Pair represents one row in side-by-side diff view, pairing corresponding
// lines from the old and new versions of a file.
//
// Alignment rules:
//   - Deletions: Left has content, Right is nil
//   - Additions: Left is nil, Right has content
//   - Context: both sides reference the same line
//   - Modifications: adjacent delete+add runs are paired Left/Right
type Pair struct {
	Left  *Line // Line from old file (nil for insertion-only row)
	Right *Line // Line from new file (nil for deletion-only row)
}

// IsContext returns true if both sides hold the same unchanged content.
func (p Pair) IsContext() bool {
	return p.Left != nil && p.Right != nil &&
		p.Left.Kind == LineContext && p.Right.Kind == LineContext
}

// IsDeletion returns true if only the left side has content.
func (p Pair) IsDeletion() bool {
	return p.Left != nil && p.Right == nil && p.Left.Kind == LineDeletion
}

// IsAddition returns true if only the right side has content.
func (p Pair) IsAddition() bool {
	return p.Left == nil && p.Right != nil && p.Right.Kind == LineAddition
}

// IsModification returns true if a deletion is paired with an addition,
// representing a changed line. These pairs are the aligner's input.
func (p Pair) IsModification() bool {
	return p.Left != nil && p.Right != nil &&
		p.Left.Kind == LineDeletion && p.Right.Kind == LineAddition
}

// IsHunkHeader returns true if this pair represents a hunk header.
// Hunk headers appear on the left side only.
func (p Pair) IsHunkHeader() bool {
	return p.Left != nil && p.Left.Kind == LineHunkHeader
}

// AlignHunk converts a hunk's lines into aligned pairs for side-by-side
// display and intra-line alignment. Consecutive deletions followed by
// consecutive additions are paired 1:1 as modifications; extras on either
// side are emitted unpaired.
func AlignHunk(hunk Hunk) []Pair {
	if len(hunk.Lines) == 0 {
		return nil
	}

	var pairs []Pair
	lines := hunk.Lines
	i := 0

	for i < len(lines) {
		switch lines[i].Kind {
		case LineHunkHeader:
			pairs = append(pairs, Pair{Left: &lines[i]})
			i++

		case LineContext:
			pairs = append(pairs, Pair{Left: &lines[i], Right: &lines[i]})
			i++

		case LineDeletion:
			deletions := collectConsecutive(lines, i, LineDeletion)
			var additions []int
			if next := i + len(deletions); next < len(lines) {
				additions = collectConsecutive(lines, next, LineAddition)
			}
			pairs = append(pairs, pairRuns(lines, deletions, additions)...)
			i += len(deletions) + len(additions)

		case LineAddition:
			// Pure addition not preceded by a deletion run.
			pairs = append(pairs, Pair{Right: &lines[i]})
			i++
		}
	}

	return pairs
}

// ModificationPairs returns the (deletion index, addition index) pairs of a
// hunk's modified lines, using the same run pairing as AlignHunk. These
// pairs are the candidates for intra-line alignment.
func ModificationPairs(hunk Hunk) [][2]int {
	var pairs [][2]int
	lines := hunk.Lines
	i := 0
	for i < len(lines) {
		if lines[i].Kind != LineDeletion {
			i++
			continue
		}
		deletions := collectConsecutive(lines, i, LineDeletion)
		additions := collectConsecutive(lines, i+len(deletions), LineAddition)
		n := min(len(deletions), len(additions))
		for j := range n {
			pairs = append(pairs, [2]int{deletions[j], additions[j]})
		}
		i += len(deletions) + len(additions)
	}
	return pairs
}

// collectConsecutive returns indices of consecutive lines of the given kind
// starting at startIdx.
func collectConsecutive(lines []Line, startIdx int, kind LineKind) []int {
	var indices []int
	for i := startIdx; i < len(lines) && lines[i].Kind == kind; i++ {
		indices = append(indices, i)
	}
	return indices
}

// pairRuns pairs deletion and addition runs 1:1 as modifications, then
// emits the remainder of the longer run unpaired.
func pairRuns(lines []Line, deletions, additions []int) []Pair {
	var pairs []Pair

	n := min(len(deletions), len(additions))
	for j := range n {
		pairs = append(pairs, Pair{Left: &lines[deletions[j]], Right: &lines[additions[j]]})
	}
	for j := n; j < len(deletions); j++ {
		pairs = append(pairs, Pair{Left: &lines[deletions[j]]})
	}
	for j := n; j < len(additions); j++ {
		pairs = append(pairs, Pair{Right: &lines[additions[j]]})
	}

	return pairs
}
