package blame

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestAggregate_AgeNormalization(t *testing.T) {
	lines := []Line{
		{SHA: "a", Author: "alice", Time: day(0)},
		{SHA: "b", Author: "bob", Time: day(5)},
		{SHA: "c", Author: "carol", Time: day(10)},
	}
	agg := NewAggregate(lines)

	require.Equal(t, day(0), agg.Oldest())
	require.Equal(t, day(10), agg.Newest())

	// Newest maps to 0.0, oldest to 1.0.
	require.InDelta(t, 1.0, agg.Intensity(lines[0], ModeAge), 1e-9)
	require.InDelta(t, 0.5, agg.Intensity(lines[1], ModeAge), 1e-9)
	require.InDelta(t, 0.0, agg.Intensity(lines[2], ModeAge), 1e-9)
}

func TestAggregate_ZeroRangeMidpoint(t *testing.T) {
	// Single-commit file: every line is both the oldest and the newest.
	lines := []Line{
		{SHA: "a", Author: "alice", Time: day(3)},
		{SHA: "a", Author: "alice", Time: day(3)},
	}
	agg := NewAggregate(lines)

	for _, l := range lines {
		require.Equal(t, 0.5, agg.Intensity(l, ModeAge))
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := NewAggregate(nil)
	require.Equal(t, 0, agg.Lines())
	require.Equal(t, 0, agg.Authors())
	require.Equal(t, 0.5, agg.Intensity(Line{}, ModeAge))
	require.Equal(t, 0.5, agg.Intensity(Line{}, ModeActivity))
}

func TestAggregate_ActivityCountsDistinctCommits(t *testing.T) {
	// Alice touched many lines but in a single commit; bob has two
	// commits, so bob is the most active author.
	lines := []Line{
		{SHA: "a1", Author: "alice", Time: day(0)},
		{SHA: "a1", Author: "alice", Time: day(0)},
		{SHA: "a1", Author: "alice", Time: day(0)},
		{SHA: "b1", Author: "bob", Time: day(1)},
		{SHA: "b2", Author: "bob", Time: day(2)},
	}
	agg := NewAggregate(lines)

	require.Equal(t, 2, agg.Authors())
	require.InDelta(t, 1.0, agg.Intensity(lines[3], ModeActivity), 1e-9)
	require.InDelta(t, 0.5, agg.Intensity(lines[0], ModeActivity), 1e-9)
}

func TestAuthorValue_StableAndBounded(t *testing.T) {
	v1 := AuthorValue("Grace Hopper")
	v2 := AuthorValue("Grace Hopper")
	require.Equal(t, v1, v2, "same author always maps to the same value")

	other := AuthorValue("Ada Lovelace")
	require.NotEqual(t, v1, other)

	for i := range 100 {
		v := AuthorValue(fmt.Sprintf("author-%d", i))
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestAggregate_IntensityBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		lines := make([]Line, n)
		for i := range lines {
			lines[i] = Line{
				SHA:    rapid.StringMatching(`[0-9a-f]{8}`).Draw(rt, "sha"),
				Author: rapid.SampledFrom([]string{"alice", "bob", "carol", "dave"}).Draw(rt, "author"),
				Time:   day(rapid.IntRange(0, 3650).Draw(rt, "days")),
			}
		}
		agg := NewAggregate(lines)

		for _, l := range lines {
			for _, mode := range []Mode{ModeAge, ModeAuthor, ModeActivity} {
				v := agg.Intensity(l, mode)
				require.GreaterOrEqual(rt, v, 0.0, "mode %s", mode)
				require.LessOrEqual(rt, v, 1.0, "mode %s", mode)
			}
		}
	})
}

func TestParseMode(t *testing.T) {
	require.Equal(t, ModeAge, ParseMode("age"))
	require.Equal(t, ModeAuthor, ParseMode("author"))
	require.Equal(t, ModeActivity, ParseMode("activity"))
	require.Equal(t, ModeAge, ParseMode(""), "unknown modes default to age")
	require.Equal(t, ModeAge, ParseMode("bogus"))
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "age", ModeAge.String())
	require.Equal(t, "author", ModeAuthor.String())
	require.Equal(t, "activity", ModeActivity.String())
}
