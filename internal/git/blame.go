package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gitscope/gitscope/internal/blame"
)

// commitMeta holds the commit fields the porcelain stream emits once per
// commit. Later lines from the same commit reference it by SHA only.
type commitMeta struct {
	author      string
	authorEmail string
	authorTime  time.Time
	summary     string
}

// ParseBlamePorcelain parses `git blame --porcelain` output into per-line
// records. The porcelain stream emits full commit metadata only the first
// time a commit appears; subsequent lines carry just the SHA header, so the
// parser keeps a per-commit registry.
func ParseBlamePorcelain(output string) ([]blame.Line, error) {
	var lines []blame.Line
	commits := make(map[string]*commitMeta)

	var (
		currentSHA  string
		currentLine int
	)

	for raw := range strings.SplitSeq(output, "\n") {
		if raw == "" {
			continue
		}

		// Content lines are tab-prefixed and close out the pending header.
		if raw[0] == '\t' {
			if currentSHA == "" {
				return nil, fmt.Errorf("content line with no preceding header: %q", raw)
			}
			meta := commits[currentSHA]
			if meta == nil {
				return nil, fmt.Errorf("content line references unknown commit %s", currentSHA)
			}
			lines = append(lines, blame.Line{
				SHA:         currentSHA,
				Author:      meta.author,
				AuthorEmail: meta.authorEmail,
				Time:        meta.authorTime,
				Summary:     meta.summary,
				LineNumber:  currentLine,
				Content:     raw[1:],
			})
			currentSHA = ""
			continue
		}

		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		// A 40-char hex first field starts a new line header:
		// <sha> <orig-line> <final-line> [<group-size>]
		if len(fields[0]) == 40 && isHex(fields[0]) && len(fields) >= 3 {
			final, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("bad line number in header %q: %w", raw, err)
			}
			currentSHA = fields[0]
			currentLine = final
			if commits[currentSHA] == nil {
				commits[currentSHA] = &commitMeta{}
			}
			continue
		}

		// Metadata lines apply to the commit of the pending header.
		if currentSHA == "" {
			continue
		}
		meta := commits[currentSHA]
		key, value, _ := strings.Cut(raw, " ")
		switch key {
		case "author":
			meta.author = value
		case "author-mail":
			meta.authorEmail = strings.Trim(value, "<>")
		case "author-time":
			epoch, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad author-time %q: %w", value, err)
			}
			meta.authorTime = time.Unix(epoch, 0)
		case "summary":
			meta.summary = value
		}
	}

	return lines, nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
