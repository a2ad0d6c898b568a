package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func styleOf(t *testing.T, spans []Span, text string) Style {
	t.Helper()
	for _, s := range spans {
		if s.Text == text {
			return s.Style
		}
	}
	t.Fatalf("no span with text %q in %+v", text, spans)
	return Style{}
}

func TestTokenize_EmptyLine(t *testing.T) {
	tok := NewTokenizer()
	require.Nil(t, tok.Tokenize("go", ""))
}

func TestTokenize_CoversLineExactly(t *testing.T) {
	tok := NewTokenizer()
	lines := []string{
		`func main() {`,
		`	x := compute(a, 42) // answer`,
		`const greeting = "héllo, wörld"`,
		`}`,
		"\tplain text with no tokens at all",
	}
	for _, line := range lines {
		spans := tok.Tokenize("go", line)
		require.Equal(t, line, JoinSpans(spans), "line %q", line)
		for _, s := range spans {
			require.NotEmpty(t, s.Text)
		}
	}
}

func TestTokenize_GoKeywordAndBuiltin(t *testing.T) {
	tok := NewTokenizer()
	spans := tok.Tokenize("go", "return nil")

	kw := styleOf(t, spans, "return")
	require.Equal(t, colorKeyword, kw.Color)
	require.True(t, kw.Bold)

	lit := styleOf(t, spans, "nil")
	require.True(t, lit.Italic)

	require.True(t, styleOf(t, spans, " ").IsZero())
}

func TestTokenize_CallStylesNameNotParen(t *testing.T) {
	tok := NewTokenizer()
	spans := tok.Tokenize("go", "foo(x)")

	require.Equal(t, []Span{
		{Text: "foo", Style: Style{Color: colorFunc}},
		{Text: "(x)"},
	}, spans)
}

func TestTokenize_LastRuleWins(t *testing.T) {
	tok := NewTokenizer()

	// The comment rule runs after the keyword rule, so a keyword inside a
	// comment is styled as comment.
	spans := tok.Tokenize("go", "// if x")
	require.Equal(t, []Span{
		{Text: "// if x", Style: Style{Color: colorComment, Italic: true}},
	}, spans)

	// Same for keywords inside string literals.
	spans = tok.Tokenize("go", `"return"`)
	require.Equal(t, []Span{
		{Text: `"return"`, Style: Style{Color: colorString}},
	}, spans)
}

func TestTokenize_UnknownLanguageFallsBackToGeneric(t *testing.T) {
	tok := NewTokenizer()
	spans := tok.Tokenize("brainfuck", `x = "hi" + 42`)

	require.Equal(t, colorString, styleOf(t, spans, `"hi"`).Color)
	require.Equal(t, colorNumber, styleOf(t, spans, "42").Color)
	require.True(t, styleOf(t, spans, "x = ").IsZero())
}

func TestTokenize_MalformedPatternSkipped(t *testing.T) {
	builtin["tokenizer-test-malformed"] = []Rule{
		{Name: "broken", Pattern: `[unclosed`, Style: Style{Color: "#FF0000"}},
		{Name: "word", Pattern: `\bfoo\b`, Style: Style{Color: "#00FF00"}},
	}
	defer delete(builtin, "tokenizer-test-malformed")

	tok := NewTokenizer()
	spans := tok.Tokenize("tokenizer-test-malformed", "foo bar")

	// The broken rule is dropped at compile time; the valid one still runs.
	require.Equal(t, []Span{
		{Text: "foo", Style: Style{Color: "#00FF00"}},
		{Text: " bar"},
	}, spans)
}

func TestTokenize_InvalidateRecompiles(t *testing.T) {
	const lang = "tokenizer-test-invalidate"
	builtin[lang] = []Rule{
		{Name: "word", Pattern: `\bfoo\b`, Style: Style{Color: "#00FF00"}},
	}
	defer delete(builtin, lang)

	tok := NewTokenizer()
	require.Equal(t, "#00FF00", styleOf(t, tok.Tokenize(lang, "foo"), "foo").Color)

	// Swap the rule table; without invalidation the memoized compile wins.
	builtin[lang] = []Rule{
		{Name: "word", Pattern: `\bfoo\b`, Style: Style{Color: "#0000FF"}},
	}
	require.Equal(t, "#00FF00", styleOf(t, tok.Tokenize(lang, "foo"), "foo").Color)

	tok.Invalidate(lang)
	require.Equal(t, "#0000FF", styleOf(t, tok.Tokenize(lang, "foo"), "foo").Color)
}

func TestTokenize_Properties(t *testing.T) {
	tok := NewTokenizer()
	langs := append(Languages(), "unknown")

	rapid.Check(t, func(t *rapid.T) {
		lang := rapid.SampledFrom(langs).Draw(t, "lang")
		line := rapid.String().Draw(t, "line")

		spans := tok.Tokenize(lang, line)

		// Concatenating span text reconstructs the line byte for byte.
		require.Equal(t, line, JoinSpans(spans))

		// Adjacent spans never share a style, or coalescing failed.
		for i := 1; i < len(spans); i++ {
			require.NotEqual(t, spans[i-1].Style, spans[i].Style)
		}
	})
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"a/internal/render/renderer.go", "go"},
		{"b/src/lib.rs", "rust"},
		{"App.swift", "swift"},
		{"script.PY", "python"},
		{"component.tsx", "javascript"},
		{"README.md", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DetectLanguage(tt.path), "path %q", tt.path)
	}
}
