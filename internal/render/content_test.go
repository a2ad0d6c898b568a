package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitscope/gitscope/internal/diff"
)

const singleFileDiff = `diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,2 +1,2 @@
 package main
-foo(x)
+foo(x, y)
`

const twoFileDiff = singleFileDiff + `diff --git a/util.go b/util.go
index 3333333..4444444 100644
--- a/util.go
+++ b/util.go
@@ -5,1 +5,2 @@
 var a int
+var b int
`

func mustContent(t *testing.T, text string) *Content {
	t.Helper()
	files, err := diff.Parse(text)
	require.NoError(t, err)
	return NewContent(files)
}

func TestNewContent_SingleFile(t *testing.T) {
	c := mustContent(t, singleFileDiff)

	// Hunk header, context, deletion, addition. No file header row for a
	// single-file diff.
	require.Equal(t, 4, c.TotalLines(ViewModeUnified))
	require.Equal(t, diff.LineHunkHeader, c.unified[0].kind)
	require.False(t, c.unified[0].isFileHeader)

	require.Equal(t, diff.LineContext, c.unified[1].kind)
	require.Equal(t, "package main", c.unified[1].content)
	require.Equal(t, "go", c.unified[1].lang)
	require.Equal(t, "main.go", c.unified[1].path)

	// Hunk header, context pair, modification pair.
	require.Equal(t, 3, c.TotalLines(ViewModeSideBySide))
}

func TestNewContent_ModificationCounterparts(t *testing.T) {
	c := mustContent(t, singleFileDiff)

	del := c.unified[2]
	require.Equal(t, diff.LineDeletion, del.kind)
	require.True(t, del.hasCounterpart)
	require.Equal(t, "foo(x, y)", del.counterpart)

	add := c.unified[3]
	require.Equal(t, diff.LineAddition, add.kind)
	require.True(t, add.hasCounterpart)
	require.Equal(t, "foo(x)", add.counterpart)

	require.False(t, c.unified[1].hasCounterpart)
}

func TestNewContent_MultiFileHeaders(t *testing.T) {
	c := mustContent(t, twoFileDiff)

	// file header + 4 hunk rows + separator, then file header + 3 hunk rows.
	require.Equal(t, 10, c.TotalLines(ViewModeUnified))

	require.True(t, c.unified[0].isFileHeader)
	require.Equal(t, "main.go", c.unified[0].fileHeader)
	require.Equal(t, 1, c.unified[0].adds)
	require.Equal(t, 1, c.unified[0].dels)

	require.True(t, c.unified[6].isFileHeader)
	require.Equal(t, "util.go", c.unified[6].fileHeader)
}

func TestContent_FileOffsets(t *testing.T) {
	single := mustContent(t, singleFileDiff)
	require.Equal(t, []int{0}, single.FileOffsets(ViewModeUnified))
	require.Equal(t, []int{0}, single.FileOffsets(ViewModeSideBySide))

	multi := mustContent(t, twoFileDiff)
	require.Equal(t, []int{0, 6}, multi.FileOffsets(ViewModeUnified))
	require.Equal(t, []int{0, 5}, multi.FileOffsets(ViewModeSideBySide))
}

func TestContent_PathAt(t *testing.T) {
	c := mustContent(t, twoFileDiff)

	require.Equal(t, "main.go", c.PathAt(ViewModeUnified, 0))
	require.Equal(t, "main.go", c.PathAt(ViewModeUnified, 4))
	require.Equal(t, "util.go", c.PathAt(ViewModeUnified, 6))
	require.Equal(t, "util.go", c.PathAt(ViewModeSideBySide, 8))

	require.Equal(t, "", c.PathAt(ViewModeUnified, -1))
	require.Equal(t, "", c.PathAt(ViewModeUnified, 1000))
}

func TestViewMode_String(t *testing.T) {
	require.Equal(t, "UNIFIED", ViewModeUnified.String())
	require.Equal(t, "SIDE-BY-SIDE", ViewModeSideBySide.String())
	require.Equal(t, "UNKNOWN", ViewMode(99).String())
}
