package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mkHunk(lines ...Line) Hunk {
	return Hunk{Lines: lines}
}

func TestAlignHunk_ContextOnly(t *testing.T) {
	hunk := mkHunk(
		Line{Kind: LineHunkHeader},
		Line{Kind: LineContext, OldNum: 1, NewNum: 1, Content: "a"},
		Line{Kind: LineContext, OldNum: 2, NewNum: 2, Content: "b"},
	)

	pairs := AlignHunk(hunk)
	require.Len(t, pairs, 3)
	require.True(t, pairs[0].IsHunkHeader())
	require.True(t, pairs[1].IsContext())
	require.True(t, pairs[2].IsContext())
	require.Equal(t, "a", pairs[1].Left.Content)
	require.Same(t, pairs[1].Left, pairs[1].Right)
}

func TestAlignHunk_Modification(t *testing.T) {
	hunk := mkHunk(
		Line{Kind: LineDeletion, OldNum: 3, Content: "old"},
		Line{Kind: LineAddition, NewNum: 3, Content: "new"},
	)

	pairs := AlignHunk(hunk)
	require.Len(t, pairs, 1)
	require.True(t, pairs[0].IsModification())
	require.Equal(t, "old", pairs[0].Left.Content)
	require.Equal(t, "new", pairs[0].Right.Content)
}

func TestAlignHunk_UnbalancedRuns(t *testing.T) {
	// Two deletions, one addition: one modification pair plus one bare
	// deletion.
	hunk := mkHunk(
		Line{Kind: LineDeletion, Content: "d1"},
		Line{Kind: LineDeletion, Content: "d2"},
		Line{Kind: LineAddition, Content: "a1"},
	)

	pairs := AlignHunk(hunk)
	require.Len(t, pairs, 2)
	require.True(t, pairs[0].IsModification())
	require.Equal(t, "d1", pairs[0].Left.Content)
	require.Equal(t, "a1", pairs[0].Right.Content)
	require.True(t, pairs[1].IsDeletion())
	require.Equal(t, "d2", pairs[1].Left.Content)
}

func TestAlignHunk_PureAddition(t *testing.T) {
	hunk := mkHunk(
		Line{Kind: LineContext, Content: "ctx"},
		Line{Kind: LineAddition, Content: "a1"},
	)

	pairs := AlignHunk(hunk)
	require.Len(t, pairs, 2)
	require.True(t, pairs[1].IsAddition())
	require.Nil(t, pairs[1].Left)
}

func TestAlignHunk_Empty(t *testing.T) {
	require.Nil(t, AlignHunk(Hunk{}))
}

func TestModificationPairs_RunPairing(t *testing.T) {
	hunk := mkHunk(
		Line{Kind: LineHunkHeader},
		Line{Kind: LineContext},
		Line{Kind: LineDeletion, Content: "d1"}, // 2
		Line{Kind: LineDeletion, Content: "d2"}, // 3
		Line{Kind: LineAddition, Content: "a1"}, // 4
		Line{Kind: LineAddition, Content: "a2"}, // 5
		Line{Kind: LineAddition, Content: "a3"}, // 6
		Line{Kind: LineContext},
		Line{Kind: LineDeletion, Content: "d3"}, // 8
	)

	pairs := ModificationPairs(hunk)
	require.Equal(t, [][2]int{{2, 4}, {3, 5}}, pairs)
}

func TestModificationPairs_NoAdjacency(t *testing.T) {
	// A context line between the runs breaks the pairing.
	hunk := mkHunk(
		Line{Kind: LineDeletion, Content: "d"},
		Line{Kind: LineContext},
		Line{Kind: LineAddition, Content: "a"},
	)

	require.Empty(t, ModificationPairs(hunk))
}

func TestHunk_CountsMatchHeader(t *testing.T) {
	hunk := Hunk{
		OldCount: 3,
		NewCount: 3,
		Lines: []Line{
			{Kind: LineHunkHeader},
			{Kind: LineContext},
			{Kind: LineDeletion},
			{Kind: LineAddition},
			{Kind: LineContext},
		},
	}
	require.True(t, hunk.CountsMatchHeader())

	hunk.NewCount = 5
	require.False(t, hunk.CountsMatchHeader())
}

func TestLineKind_String(t *testing.T) {
	require.Equal(t, "context", LineContext.String())
	require.Equal(t, "addition", LineAddition.String())
	require.Equal(t, "deletion", LineDeletion.String())
	require.Equal(t, "hunk-header", LineHunkHeader.String())
}
