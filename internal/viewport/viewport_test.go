package viewport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestViewport(total int) *Viewport {
	v := New(total, Config{LineHeight: 1, BufferLines: 10})
	v.SetSize(80, 20)
	return v
}

func TestViewport_ScrollClamping(t *testing.T) {
	v := newTestViewport(100)

	v.ScrollUp(5)
	require.Equal(t, 0, v.YOffset(), "cannot scroll above the top")
	require.True(t, v.AtTop())

	v.ScrollDown(1000)
	require.Equal(t, 80, v.YOffset(), "offset clamps to total-height")
	require.True(t, v.AtBottom())
}

func TestViewport_PageMovement(t *testing.T) {
	v := newTestViewport(100)

	v.PageDown()
	require.Equal(t, 20, v.YOffset())

	v.HalfPageDown()
	require.Equal(t, 30, v.YOffset())

	v.HalfPageUp()
	require.Equal(t, 20, v.YOffset())

	v.PageUp()
	require.Equal(t, 0, v.YOffset())
}

func TestViewport_GotoTopBottom(t *testing.T) {
	v := newTestViewport(100)

	v.GotoBottom()
	require.Equal(t, 80, v.YOffset())
	require.True(t, v.AtBottom())

	v.GotoTop()
	require.Equal(t, 0, v.YOffset())
}

func TestViewport_ShortContent(t *testing.T) {
	v := newTestViewport(5)

	v.ScrollDown(10)
	require.Equal(t, 0, v.YOffset(), "content shorter than viewport never scrolls")
	require.True(t, v.AtTop())
	require.True(t, v.AtBottom())
}

func TestViewport_SetTotalLinesClamps(t *testing.T) {
	v := newTestViewport(1000)
	v.GotoBottom()
	require.Equal(t, 980, v.YOffset())

	v.SetTotalLines(50)
	require.Equal(t, 30, v.YOffset(), "shrinking content pulls the offset back")
}

func TestViewport_ScrollPercent(t *testing.T) {
	v := newTestViewport(120)

	require.Equal(t, 0.0, v.ScrollPercent())

	v.GotoBottom()
	require.Equal(t, 1.0, v.ScrollPercent())

	v.SetYOffset(50)
	require.Equal(t, 0.5, v.ScrollPercent())
}

func TestViewport_VisibleAndRenderWindows(t *testing.T) {
	v := newTestViewport(1000)
	v.SetYOffset(100)

	visible := v.VisibleRange()
	require.Equal(t, Window{Start: 100, End: 120}, visible)

	render := v.RenderWindow()
	require.Equal(t, Window{Start: 90, End: 130}, render)
	require.True(t, render.Contains(visible.Start))
	require.True(t, render.Contains(visible.End-1))
}

func TestViewport_EnsureVisible(t *testing.T) {
	v := newTestViewport(1000)

	moved := v.EnsureVisible(500)
	require.True(t, moved)
	require.True(t, v.VisibleRange().Contains(500))

	moved = v.EnsureVisible(500)
	require.False(t, moved, "already visible lines do not move the viewport")

	moved = v.EnsureVisible(0)
	require.True(t, moved)
	require.Equal(t, 0, v.YOffset())
}
