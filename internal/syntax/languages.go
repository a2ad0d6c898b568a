package syntax

import (
	"path/filepath"
	"strings"
)

// Token colors (Catppuccin Mocha).
const (
	colorKeyword = "#CBA6F7" // mauve
	colorType    = "#94E2D5" // teal
	colorFunc    = "#89B4FA" // blue
	colorString  = "#F9E2AF" // yellow
	colorNumber  = "#FAB387" // peach
	colorComment = "#6C7086" // overlay0
	colorAttr    = "#F38BA8" // red
)

// Rule ordering matters: string and comment rules come last so that a
// keyword inside a string literal or trailing comment ends up styled as
// string/comment, not keyword (last-applied-wins).
//
// Only call rules declare a capture group; the tokenizer styles group 1
// when one exists, so every other grouping must be non-capturing (?:...).

// genericRules is the fallback rule set for unrecognized languages. It
// covers only string and numeric literals.
var genericRules = []Rule{
	{Name: "number", Pattern: `\b\d+(?:\.\d+)?\b`, Style: Style{Color: colorNumber}},
	{Name: "string", Pattern: `"[^"]*"|'[^']*'`, Style: Style{Color: colorString}},
}

// builtin maps a language identifier to its ordered rule table.
var builtin = map[string][]Rule{
	"go": {
		{Name: "keyword", Pattern: `\b(?:break|case|chan|const|continue|default|defer|else|fallthrough|for|func|go|goto|if|import|interface|map|package|range|return|select|struct|switch|type|var)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "type", Pattern: `\b(?:bool|byte|complex64|complex128|error|float32|float64|int|int8|int16|int32|int64|rune|string|uint|uint8|uint16|uint32|uint64|uintptr|any)\b`, Style: Style{Color: colorType}},
		{Name: "builtin", Pattern: `\b(?:append|cap|close|copy|delete|len|make|new|nil|panic|print|println|recover|true|false|iota)\b`, Style: Style{Color: colorNumber, Italic: true}},
		{Name: "call", Pattern: `([A-Za-z_][A-Za-z0-9_]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b\d+(?:\.\d+)?\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: "`[^`]*`|\"(?:\\\\.|[^\"\\\\])*\"|'(?:\\\\.|[^'\\\\])*'", Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `//.*$`, Style: Style{Color: colorComment, Italic: true}},
	},
	"c": {
		{Name: "keyword", Pattern: `\b(?:auto|break|case|const|continue|default|do|else|enum|extern|for|goto|if|inline|register|restrict|return|sizeof|static|struct|switch|typedef|union|volatile|while)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "type", Pattern: `\b(?:char|double|float|int|long|short|signed|unsigned|void|size_t|ssize_t|uint8_t|uint16_t|uint32_t|uint64_t|int8_t|int16_t|int32_t|int64_t|bool)\b`, Style: Style{Color: colorType}},
		{Name: "preproc", Pattern: `^\s*#\s*\w+`, Style: Style{Color: colorAttr}},
		{Name: "call", Pattern: `([A-Za-z_][A-Za-z0-9_]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b(?:0[xX][0-9a-fA-F]+|\d+(?:\.\d+)?[uUlLfF]*)\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`, Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `//.*$|/\*.*?\*/`, Style: Style{Color: colorComment, Italic: true}},
	},
	"python": {
		{Name: "keyword", Pattern: `\b(?:and|as|assert|async|await|break|class|continue|def|del|elif|else|except|finally|for|from|global|if|import|in|is|lambda|nonlocal|not|or|pass|raise|return|try|while|with|yield)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "builtin", Pattern: `\b(?:None|True|False|self|cls|print|len|range|dict|list|set|tuple|str|int|float|bool|bytes)\b`, Style: Style{Color: colorType}},
		{Name: "decorator", Pattern: `@[A-Za-z_][A-Za-z0-9_.]*`, Style: Style{Color: colorAttr}},
		{Name: "call", Pattern: `([A-Za-z_][A-Za-z0-9_]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b\d+(?:\.\d+)?\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`, Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `#.*$`, Style: Style{Color: colorComment, Italic: true}},
	},
	"rust": {
		{Name: "keyword", Pattern: `\b(?:as|async|await|break|const|continue|crate|dyn|else|enum|extern|fn|for|if|impl|in|let|loop|match|mod|move|mut|pub|ref|return|static|struct|trait|type|unsafe|use|where|while)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "type", Pattern: `\b(?:i8|i16|i32|i64|i128|isize|u8|u16|u32|u64|u128|usize|f32|f64|bool|char|str|String|Vec|Option|Result|Box|Self)\b`, Style: Style{Color: colorType}},
		{Name: "attribute", Pattern: `#!?\[[^\]]*\]`, Style: Style{Color: colorAttr}},
		{Name: "macro", Pattern: `\b[A-Za-z_][A-Za-z0-9_]*!`, Style: Style{Color: colorFunc, Bold: true}},
		{Name: "call", Pattern: `([A-Za-z_][A-Za-z0-9_]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b\d[\d_]*(?:\.[\d_]+)?\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: `"(?:\\.|[^"\\])*"`, Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `//.*$`, Style: Style{Color: colorComment, Italic: true}},
	},
	"swift": {
		{Name: "keyword", Pattern: `\b(?:associatedtype|class|deinit|enum|extension|fileprivate|func|import|init|inout|internal|let|open|operator|private|protocol|public|static|struct|subscript|typealias|var|break|case|continue|default|defer|do|else|fallthrough|for|guard|if|in|repeat|return|switch|where|while|as|catch|is|throw|throws|try|await|async)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "type", Pattern: `\b(?:Int|UInt|Double|Float|Bool|String|Character|Array|Dictionary|Set|Optional|Any|AnyObject|Self|nil|true|false|self|super)\b`, Style: Style{Color: colorType}},
		{Name: "attribute", Pattern: `@[A-Za-z_][A-Za-z0-9_]*`, Style: Style{Color: colorAttr}},
		{Name: "call", Pattern: `([A-Za-z_][A-Za-z0-9_]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b\d+(?:\.\d+)?\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: `"(?:\\.|[^"\\])*"`, Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `//.*$`, Style: Style{Color: colorComment, Italic: true}},
	},
	"javascript": {
		{Name: "keyword", Pattern: `\b(?:async|await|break|case|catch|class|const|continue|debugger|default|delete|do|else|export|extends|finally|for|function|if|import|in|instanceof|let|new|of|return|static|super|switch|this|throw|try|typeof|var|void|while|with|yield)\b`, Style: Style{Color: colorKeyword, Bold: true}},
		{Name: "builtin", Pattern: `\b(?:true|false|null|undefined|NaN|Infinity|console|window|document|Promise|Array|Object|String|Number|Boolean|Map|Set|JSON|Math)\b`, Style: Style{Color: colorType}},
		{Name: "call", Pattern: `([A-Za-z_$][A-Za-z0-9_$]*)\(`, Style: Style{Color: colorFunc}},
		{Name: "number", Pattern: `\b\d+(?:\.\d+)?\b`, Style: Style{Color: colorNumber}},
		{Name: "string", Pattern: "`[^`]*`|\"(?:\\\\.|[^\"\\\\])*\"|'(?:\\\\.|[^'\\\\])*'", Style: Style{Color: colorString}},
		{Name: "comment", Pattern: `//.*$`, Style: Style{Color: colorComment, Italic: true}},
	},
}

// extensions maps file extensions to language identifiers.
var extensions = map[string]string{
	".go":    "go",
	".c":     "c",
	".h":     "c",
	".cc":    "c",
	".cpp":   "c",
	".hpp":   "c",
	".py":    "python",
	".rs":    "rust",
	".swift": "swift",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "javascript",
	".tsx":   "javascript",
	".mjs":   "javascript",
}

// DetectLanguage returns the language identifier for a file path, or ""
// if the extension is not recognized. Paths with the "a/" or "b/" prefixes
// git puts in diff headers are accepted.
func DetectLanguage(path string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// RulesFor returns the ordered rule table for a language identifier. An
// unrecognized language falls back to the generic literal-only rules.
func RulesFor(lang string) []Rule {
	if rules, ok := builtin[lang]; ok {
		return rules
	}
	return genericRules
}

// Languages returns the identifiers of all registered languages.
func Languages() []string {
	out := make([]string, 0, len(builtin))
	for lang := range builtin {
		out = append(out, lang)
	}
	return out
}
