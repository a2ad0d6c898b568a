// Package align computes intra-line change highlighting for paired
// deletion/addition lines. Two granularities are provided: Chars, a pure
// equality-based LCS over the two character sequences, and Words, a
// token-level diff with semantic cleanup for coarser emphasis.
package align

// Range is a half-open byte range [Start, End) within one side's content.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Chars computes the character ranges that differ between an old line and a
// new line believed to represent the same logical line, modified.
//
// The algorithm is the standard O(m·n) dynamic-programming Longest Common
// Subsequence over the two rune sequences; the backward walk over the table
// yields matched positions, and contiguous unmatched runs become the
// changed ranges per side. No gap penalty, no character-class weighting.
//
// Identical inputs yield nil on both sides; completely disjoint inputs
// yield one range spanning each side's full extent; empty inputs cost
// nothing. The quadratic table makes this suitable only for the bounded set
// of simultaneously visible line pairs, never a whole file.
func Chars(oldLine, newLine string) (oldChanged, newChanged []Range) {
	if oldLine == newLine {
		return nil, nil
	}

	oldRunes, oldOffsets := explode(oldLine)
	newRunes, newOffsets := explode(newLine)
	m, n := len(oldRunes), len(newRunes)

	if m == 0 {
		return nil, []Range{{Start: 0, End: len(newLine)}}
	}
	if n == 0 {
		return []Range{{Start: 0, End: len(oldLine)}}, nil
	}

	// LCS length table: table[i][j] is the LCS of oldRunes[:i], newRunes[:j].
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldRunes[i-1] == newRunes[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
		}
	}

	// Backward walk marks which positions participate in the LCS.
	oldMatched := make([]bool, m)
	newMatched := make([]bool, n)
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case oldRunes[i-1] == newRunes[j-1]:
			oldMatched[i-1] = true
			newMatched[j-1] = true
			i--
			j--
		case table[i-1][j] >= table[i][j-1]:
			i--
		default:
			j--
		}
	}

	return unmatchedRuns(oldMatched, oldOffsets, len(oldLine)),
		unmatchedRuns(newMatched, newOffsets, len(newLine))
}

// explode splits a string into runes alongside each rune's byte offset.
func explode(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s))
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	return runes, offsets
}

// unmatchedRuns derives contiguous unmatched rune runs as byte ranges.
func unmatchedRuns(matched []bool, offsets []int, byteLen int) []Range {
	var ranges []Range
	runStart := -1
	for i, ok := range matched {
		if !ok {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			ranges = append(ranges, Range{Start: offsets[runStart], End: offsets[i]})
			runStart = -1
		}
	}
	if runStart >= 0 {
		ranges = append(ranges, Range{Start: offsets[runStart], End: byteLen})
	}
	return ranges
}

// InRanges reports whether a byte position falls inside any of the ranges.
// Ranges produced by Chars are sorted and non-overlapping, so a linear scan
// over the handful of ranges per line is fine.
func InRanges(pos int, ranges []Range) bool {
	for _, r := range ranges {
		if pos >= r.Start && pos < r.End {
			return true
		}
	}
	return false
}
