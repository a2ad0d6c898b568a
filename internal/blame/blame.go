// Package blame models per-line attribution data and the heatmap engine
// that turns it into renderable intensities. The blame line sequence is an
// immutable input for the lifetime of one annotation view; if the file
// changes, the owning view discards and recreates it.
package blame

import "time"

// Line is one annotated source line.
type Line struct {
	SHA         string    // Identifying revision
	Author      string    // Author name
	AuthorEmail string    // Author email
	Time        time.Time // Revision timestamp
	Summary     string    // First line of the revision message
	LineNumber  int       // 1-based line number in the current file
	Content     string    // Line text
}

// Mode selects how blame data maps to heatmap intensities.
type Mode int

const (
	// ModeAge shades lines by how old their last revision is relative to
	// the file's oldest and newest revisions.
	ModeAge Mode = iota
	// ModeAuthor gives each distinct author a deterministic, stable value
	// so the same author renders the same hue across sessions and files.
	ModeAuthor
	// ModeActivity shades lines by how prolific their author is within the
	// file; the most prolific contributor renders at full intensity.
	ModeActivity
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeAge:
		return "age"
	case ModeAuthor:
		return "author"
	case ModeActivity:
		return "activity"
	default:
		return "unknown"
	}
}

// ParseMode maps a configuration string to a Mode, defaulting to ModeAge.
func ParseMode(s string) Mode {
	switch s {
	case "author":
		return ModeAuthor
	case "activity":
		return ModeActivity
	default:
		return ModeAge
	}
}
