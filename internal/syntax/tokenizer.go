package syntax

import (
	"regexp"
	"sync"

	"github.com/gitscope/gitscope/internal/log"
)

// compiledRule pairs a rule with its compiled pattern. Rules whose pattern
// fails to compile are dropped at table-compile time and never retried.
type compiledRule struct {
	re    *regexp.Regexp
	style Style
	// group is the submatch index to style: 1 when the pattern declares a
	// capture group (so delimiters like the "(" in a call-site rule stay
	// unstyled), 0 otherwise.
	group int
}

// Tokenizer classifies line content into styled spans using per-language
// rule tables. Compiled tables are memoized per language.
type Tokenizer struct {
	mu       sync.Mutex
	compiled map[string][]compiledRule
}

// NewTokenizer returns a Tokenizer with an empty compile memo.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{compiled: make(map[string][]compiledRule)}
}

// Tokenize returns a span sequence covering every character of line exactly
// once. Characters not matched by any rule carry the zero Style. The empty
// line yields an empty span list.
func (t *Tokenizer) Tokenize(lang, line string) []Span {
	if line == "" {
		return nil
	}

	rules := t.rulesFor(lang)
	if len(rules) == 0 {
		return []Span{{Text: line}}
	}

	// Per-byte style buffer. Regex match offsets land on rune boundaries,
	// so coalescing never splits a multi-byte rune across spans.
	styles := make([]Style, len(line))

	for _, rule := range rules {
		var locs [][]int
		if rule.group > 0 {
			locs = rule.re.FindAllStringSubmatchIndex(line, -1)
		} else {
			locs = rule.re.FindAllStringIndex(line, -1)
		}
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			if rule.group > 0 {
				start, end = loc[2*rule.group], loc[2*rule.group+1]
				if start < 0 {
					continue
				}
			}
			for i := start; i < end; i++ {
				styles[i] = rule.style
			}
		}
	}

	return coalesce(line, styles)
}

// rulesFor returns the compiled rule table for a language, compiling and
// memoizing it on first use. A malformed pattern is skipped for that rule
// only; tokenization of the line proceeds with the remaining rules.
func (t *Tokenizer) rulesFor(lang string) []compiledRule {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rules, ok := t.compiled[lang]; ok {
		return rules
	}

	table := RulesFor(lang)
	compiled := make([]compiledRule, 0, len(table))
	for _, rule := range table {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			log.Warn(log.CatSyntax, "skipping malformed pattern", "lang", lang, "rule", rule.Name, "err", err)
			continue
		}
		group := 0
		if re.NumSubexp() > 0 {
			group = 1
		}
		compiled = append(compiled, compiledRule{re: re, style: rule.Style, group: group})
	}

	t.compiled[lang] = compiled
	return compiled
}

// Invalidate drops the compiled table for a language, forcing a recompile
// on next use. Needed only when a rule table is replaced after this
// tokenizer has already compiled it; tables loaded at startup never are.
func (t *Tokenizer) Invalidate(lang string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.compiled, lang)
}

// coalesce folds the per-byte style buffer into maximal same-style runs.
func coalesce(line string, styles []Style) []Span {
	var spans []Span
	start := 0
	for i := 1; i <= len(line); i++ {
		if i == len(line) || styles[i] != styles[start] {
			spans = append(spans, Span{Text: line[start:i], Style: styles[start]})
			start = i
		}
	}
	return spans
}
