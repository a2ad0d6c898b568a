package blame

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// neutralIntensity is returned when a mode has no signal to normalize
// (zero timestamp range, empty blame set).
const neutralIntensity = 0.5

// Aggregate holds the derived statistics for one blame set: the timestamp
// extremes and the per-author revision counts. It is computed once per
// loaded blame set and reused for every per-line intensity lookup; nothing
// is recomputed per line or per render.
type Aggregate struct {
	oldest    time.Time
	newest    time.Time
	counts    map[string]int // author name -> distinct revision count
	maxCount  int
	lineCount int
}

// NewAggregate computes the aggregate for a blame set in one pass over the
// lines. An empty set is valid and yields neutral intensities everywhere.
func NewAggregate(lines []Line) *Aggregate {
	a := &Aggregate{counts: make(map[string]int)}
	if len(lines) == 0 {
		return a
	}

	a.lineCount = len(lines)
	a.oldest = lines[0].Time
	a.newest = lines[0].Time

	// Revision counts are per distinct commit, not per line: an author who
	// touched fifty lines in one commit counts once.
	seen := make(map[string]map[string]bool)
	for _, l := range lines {
		if l.Time.Before(a.oldest) {
			a.oldest = l.Time
		}
		if l.Time.After(a.newest) {
			a.newest = l.Time
		}

		shas := seen[l.Author]
		if shas == nil {
			shas = make(map[string]bool)
			seen[l.Author] = shas
		}
		if !shas[l.SHA] {
			shas[l.SHA] = true
			a.counts[l.Author]++
			if a.counts[l.Author] > a.maxCount {
				a.maxCount = a.counts[l.Author]
			}
		}
	}

	return a
}

// Oldest returns the oldest revision timestamp in the blame set.
func (a *Aggregate) Oldest() time.Time { return a.oldest }

// Newest returns the newest revision timestamp in the blame set.
func (a *Aggregate) Newest() time.Time { return a.newest }

// Authors returns the number of distinct authors in the blame set.
func (a *Aggregate) Authors() int { return len(a.counts) }

// Lines returns the number of lines in the blame set.
func (a *Aggregate) Lines() int { return a.lineCount }

// Intensity returns the normalized heatmap intensity in [0, 1] for a blame
// line under the given mode.
func (a *Aggregate) Intensity(line Line, mode Mode) float64 {
	switch mode {
	case ModeAuthor:
		return AuthorValue(line.Author)
	case ModeActivity:
		return a.activity(line.Author)
	default:
		return a.age(line.Time)
	}
}

// age normalizes a revision time against the set's timestamp range: the
// newest revision maps to 0.0, the oldest to 1.0. A zero range
// (single-commit file) maps every line to the midpoint rather than
// dividing by zero.
func (a *Aggregate) age(t time.Time) float64 {
	span := a.newest.Sub(a.oldest)
	if span <= 0 {
		return neutralIntensity
	}
	v := float64(a.newest.Sub(t)) / float64(span)
	return clamp01(v)
}

// activity normalizes an author's revision count against the file's most
// prolific contributor, who always renders at full intensity.
func (a *Aggregate) activity(author string) float64 {
	if a.maxCount == 0 {
		return neutralIntensity
	}
	return clamp01(float64(a.counts[author]) / float64(a.maxCount))
}

// AuthorValue maps an author name to a deterministic pseudo-random value in
// [0, 1) via a stable hash, so the same author always gets the same hue
// across sessions and files. Not a relative intensity.
func AuthorValue(author string) float64 {
	h := xxhash.Sum64String(author)
	// Keep the top 53 bits so the quotient is exact in a float64.
	return float64(h>>11) / float64(uint64(1)<<53)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
