package syntax

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulesFile is the root structure for a user language rules file.
type RulesFile struct {
	Languages map[string]LanguageDef `yaml:"languages"`
}

// LanguageDef defines one language in YAML: the extensions that select it
// and its ordered rule list.
type LanguageDef struct {
	Extensions []string  `yaml:"extensions"` // e.g., [".zig"]
	Rules      []RuleDef `yaml:"rules"`      // Applied in declaration order
}

// RuleDef defines a single tokenization rule in YAML.
type RuleDef struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Color   string `yaml:"color"`
	Bold    bool   `yaml:"bold"`
	Italic  bool   `yaml:"italic"`
}

// LoadRules parses a YAML rules document and registers its languages,
// replacing any builtin table of the same name. The tokenizer algorithm is
// untouched; new languages are purely data. Patterns are not validated
// here: a malformed pattern is skipped at tokenize time like any other.
func LoadRules(content []byte) error {
	var file RulesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return fmt.Errorf("parse language rules: %w", err)
	}

	for lang, def := range file.Languages {
		if lang == "" {
			return fmt.Errorf("language rules: empty language name")
		}
		if len(def.Rules) == 0 {
			return fmt.Errorf("language rules: %s declares no rules", lang)
		}

		rules := make([]Rule, 0, len(def.Rules))
		for _, rd := range def.Rules {
			rules = append(rules, Rule{
				Name:    rd.Name,
				Pattern: rd.Pattern,
				Style:   Style{Color: rd.Color, Bold: rd.Bold, Italic: rd.Italic},
			})
		}
		builtin[lang] = rules

		for _, ext := range def.Extensions {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			extensions[strings.ToLower(ext)] = lang
		}
	}

	return nil
}

// LoadRulesFile reads and registers a language rules file from disk.
func LoadRulesFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := LoadRules(content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
