package align

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// WordMaxLineLength is the per-side length bound for word diffing; callers
// skip word diff for lines exceeding it. The render window already bounds
// how many pairs can be live at once, so length is the only bound needed.
const WordMaxLineLength = 500

// SegmentKind indicates whether a segment is unchanged, added, or deleted.
type SegmentKind int

const (
	SegmentUnchanged SegmentKind = iota
	SegmentAdded
	SegmentDeleted
)

// Segment represents a run of text with its diff status.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Result contains the word-level diff for one deletion/addition line pair.
type Result struct {
	OldSegments []Segment // Segments for the deleted line
	NewSegments []Segment // Segments for the added line
}

// splitTokens splits a line into words, with each whitespace and
// punctuation character as its own token.
// Example: "foo.bar.baz()" -> ["foo", ".", "bar", ".", "baz", "(", ")"]
func splitTokens(line string) []string {
	if line == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Words computes a word-level diff between two lines, with semantic cleanup
// so that scattered single-character matches collapse into readable
// changed/unchanged segments.
func Words(oldLine, newLine string) Result {
	if oldLine == "" && newLine == "" {
		return Result{}
	}
	if oldLine == "" {
		return Result{NewSegments: []Segment{{Kind: SegmentAdded, Text: newLine}}}
	}
	if newLine == "" {
		return Result{OldSegments: []Segment{{Kind: SegmentDeleted, Text: oldLine}}}
	}

	// Diff at token granularity by joining tokens with a delimiter that
	// cannot occur in line content.
	oldText := strings.Join(splitTokens(oldLine), "\x00")
	newText := strings.Join(splitTokens(newLine), "\x00")

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var result Result
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			result.OldSegments = append(result.OldSegments, Segment{Kind: SegmentUnchanged, Text: text})
			result.NewSegments = append(result.NewSegments, Segment{Kind: SegmentUnchanged, Text: text})
		case diffmatchpatch.DiffDelete:
			result.OldSegments = append(result.OldSegments, Segment{Kind: SegmentDeleted, Text: text})
		case diffmatchpatch.DiffInsert:
			result.NewSegments = append(result.NewSegments, Segment{Kind: SegmentAdded, Text: text})
		}
	}

	return result
}

