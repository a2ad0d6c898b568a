// Package syntax implements per-language token classification for diff and
// annotation rendering. It is intentionally a flat regex-pass tokenizer, not
// a real lexer: each language is an ordered list of pattern rules applied
// over the raw line, later rules overwriting earlier styling on overlapping
// spans. That trades correctness on pathological inputs (nested or escaped
// constructs) for linear, predictable cost and no per-language grammar.
package syntax

// Style describes the visual styling for a span of characters.
// The zero value is the default (unstyled) rendition.
type Style struct {
	Color  string // Hex color code (e.g. "#F38BA8") or empty for default
	Bold   bool
	Italic bool
}

// IsZero reports whether the style is the default rendition.
func (s Style) IsZero() bool {
	return s.Color == "" && !s.Bold && !s.Italic
}

// Span is a run of characters sharing one style. The concatenation of a
// span sequence's Text fields reconstructs the tokenized line exactly.
type Span struct {
	Text  string
	Style Style
}

// Rule is one ordered tokenization rule: a regex pattern and the style to
// apply to every non-overlapping match. Rules are applied in declaration
// order; a later rule overwrites the styling of earlier ones where they
// overlap (last-applied-wins, not longest-match-wins).
type Rule struct {
	Name    string // Identifier for diagnostics (keyword, string, comment, ...)
	Pattern string
	Style   Style
}

// JoinSpans reconstructs the original line from a span sequence.
func JoinSpans(spans []Span) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range spans {
		b = append(b, s.Text...)
	}
	return string(b)
}
