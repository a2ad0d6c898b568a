package syntax

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRules_RegistersLanguageAndExtensions(t *testing.T) {
	const doc = `
languages:
  loader-test-zig:
    extensions: [".zig", "zon"]
    rules:
      - name: keyword
        pattern: '\b(?:fn|pub|const|var|return)\b'
        color: "#CBA6F7"
        bold: true
      - name: comment
        pattern: '//.*$'
        color: "#6C7086"
        italic: true
`
	defer func() {
		delete(builtin, "loader-test-zig")
		delete(extensions, ".zig")
		delete(extensions, ".zon")
	}()

	require.NoError(t, LoadRules([]byte(doc)))

	// Extensions register with a leading dot whether or not the file had one.
	require.Equal(t, "loader-test-zig", DetectLanguage("src/main.zig"))
	require.Equal(t, "loader-test-zig", DetectLanguage("build.zon"))

	rules := RulesFor("loader-test-zig")
	require.Len(t, rules, 2)
	require.Equal(t, Rule{
		Name:    "keyword",
		Pattern: `\b(?:fn|pub|const|var|return)\b`,
		Style:   Style{Color: "#CBA6F7", Bold: true},
	}, rules[0])
	require.True(t, rules[1].Style.Italic)
}

func TestLoadRules_OverridesBuiltinTable(t *testing.T) {
	original := builtin["go"]
	defer func() { builtin["go"] = original }()

	const doc = `
languages:
  go:
    rules:
      - name: everything
        pattern: '.*'
        color: "#FFFFFF"
`
	require.NoError(t, LoadRules([]byte(doc)))
	require.Len(t, RulesFor("go"), 1)
	require.Equal(t, "everything", RulesFor("go")[0].Name)
}

func TestLoadRules_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "languages: [not a map"},
		{"empty language name", "languages:\n  \"\":\n    rules:\n      - name: x\n        pattern: 'x'\n"},
		{"no rules", "languages:\n  loader-test-empty:\n    extensions: [\".xyz\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, LoadRules([]byte(tt.doc)))
		})
	}
	_, registered := builtin["loader-test-empty"]
	require.False(t, registered)
}

func TestLoadRulesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	const doc = `
languages:
  loader-test-file:
    extensions: [".ltf"]
    rules:
      - name: number
        pattern: '\d+'
        color: "#FAB387"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	defer func() {
		delete(builtin, "loader-test-file")
		delete(extensions, ".ltf")
	}()

	require.NoError(t, LoadRulesFile(path))
	require.Equal(t, "loader-test-file", DetectLanguage("x.ltf"))

	err := LoadRulesFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.yaml")
}
