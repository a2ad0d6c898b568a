package viewport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCompute_TopOfContent(t *testing.T) {
	cfg := Config{LineHeight: 1, BufferLines: 50}
	win := cfg.Compute(0, 40, 10000)

	require.Equal(t, 0, win.Start, "buffer clamps at the top")
	require.Equal(t, 90, win.End, "visible 40 plus 50 buffer below")
}

func TestCompute_MiddleOfContent(t *testing.T) {
	cfg := Config{LineHeight: 1, BufferLines: 50}
	win := cfg.Compute(500, 40, 10000)

	require.Equal(t, 450, win.Start)
	require.Equal(t, 590, win.End)
	require.Equal(t, 140, win.Len())
}

func TestCompute_BottomOfContent(t *testing.T) {
	cfg := Config{LineHeight: 1, BufferLines: 50}
	win := cfg.Compute(9960, 40, 10000)

	require.Equal(t, 9910, win.Start)
	require.Equal(t, 10000, win.End, "buffer clamps at the bottom")
}

func TestCompute_ContentShorterThanViewport(t *testing.T) {
	cfg := Config{LineHeight: 1, BufferLines: 50}
	win := cfg.Compute(0, 40, 10)

	require.Equal(t, 0, win.Start)
	require.Equal(t, 10, win.End)
}

func TestCompute_DegenerateInputs(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, Window{}, cfg.Compute(0, 40, 0), "no content")
	require.Equal(t, Window{}, cfg.Compute(0, 0, 100), "no viewport")
	require.Equal(t, Window{}, cfg.Compute(0, -5, 100), "negative height")

	// Negative offset clamps to the top rather than erroring.
	win := cfg.Compute(-100, 40, 1000)
	require.Equal(t, 0, win.Start)

	// Offset past the end clamps the window to the tail.
	win = cfg.Compute(5000, 40, 100)
	require.Equal(t, 100, win.End)
	require.LessOrEqual(t, win.Start, win.End)
}

func TestCompute_LineHeightScaling(t *testing.T) {
	// Pixel-based geometry: 16px lines, 640px viewport, offset mid-file.
	cfg := Config{LineHeight: 16, BufferLines: 10}
	win := cfg.Compute(800, 640, 10000)

	// floor(800/16)=50 minus 10 buffer; ceil((800+640)/16)=90 plus 10.
	require.Equal(t, 40, win.Start)
	require.Equal(t, 100, win.End)
}

func TestCompute_Properties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{
			LineHeight:  rapid.IntRange(1, 32).Draw(rt, "lineHeight"),
			BufferLines: rapid.IntRange(0, 100).Draw(rt, "bufferLines"),
		}
		offset := rapid.IntRange(-100, 100000).Draw(rt, "offset")
		height := rapid.IntRange(-10, 2000).Draw(rt, "height")
		total := rapid.IntRange(-10, 50000).Draw(rt, "total")

		win := cfg.Compute(offset, height, total)

		require.GreaterOrEqual(rt, win.Start, 0)
		require.LessOrEqual(rt, win.Start, win.End)
		require.LessOrEqual(rt, win.End, max(total, 0))

		// The visible range is contained in the window whenever the
		// geometry is sane.
		if total > 0 && height > 0 && offset >= 0 {
			firstVisible := offset / cfg.LineHeight
			if firstVisible < total {
				require.True(rt, win.Contains(firstVisible),
					"first visible line %d outside window [%d,%d)", firstVisible, win.Start, win.End)
			}
		}
	})
}

func TestWindow_Contains(t *testing.T) {
	win := Window{Start: 10, End: 20}
	require.False(t, win.Contains(9))
	require.True(t, win.Contains(10))
	require.True(t, win.Contains(19))
	require.False(t, win.Contains(20), "half-open upper bound")
}
