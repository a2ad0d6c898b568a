package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCalculateThumbBounds_SmallFile(t *testing.T) {
	// Small file (50 lines, 30 viewport) - thumb should be large
	cfg := ScrollbarConfig{
		TotalLines:     50,
		ViewportHeight: 30,
		ScrollOffset:   0,
	}

	start, height := calculateThumbBounds(cfg)

	// thumbHeight = max(1, 30*30/50) = 18
	require.Equal(t, 18, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_LargeFile(t *testing.T) {
	// Large file (1000 lines, 30 viewport) - thumb clamps to minimum 1
	cfg := ScrollbarConfig{
		TotalLines:     1000,
		ViewportHeight: 30,
		ScrollOffset:   0,
	}

	start, height := calculateThumbBounds(cfg)

	require.Equal(t, 1, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_ContentFitsViewport(t *testing.T) {
	cfg := ScrollbarConfig{
		TotalLines:     30,
		ViewportHeight: 30,
		ScrollOffset:   0,
	}

	start, height := calculateThumbBounds(cfg)
	require.Equal(t, 30, height, "thumb should fill entire viewport when content fits")
	require.Equal(t, 0, start)

	cfg.TotalLines = 20
	start, height = calculateThumbBounds(cfg)
	require.Equal(t, 30, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_DegenerateInputs(t *testing.T) {
	start, height := calculateThumbBounds(ScrollbarConfig{TotalLines: 0, ViewportHeight: 30})
	require.Equal(t, 0, height)
	require.Equal(t, 0, start)

	start, height = calculateThumbBounds(ScrollbarConfig{TotalLines: 100, ViewportHeight: 0})
	require.Equal(t, 0, height)
	require.Equal(t, 0, start)
}

func TestCalculateThumbBounds_ScrollAtEnd(t *testing.T) {
	cfg := ScrollbarConfig{
		TotalLines:     100,
		ViewportHeight: 30,
		ScrollOffset:   70, // maxOffset = 100 - 30 = 70
	}

	start, height := calculateThumbBounds(cfg)

	// thumbHeight = max(1, 30*30/100) = 9; bottom start = 30 - 9 = 21
	require.Equal(t, 9, height)
	require.Equal(t, 21, start)
}

func TestCalculateThumbBounds_ScrollMiddle(t *testing.T) {
	cfg := ScrollbarConfig{
		TotalLines:     100,
		ViewportHeight: 30,
		ScrollOffset:   35,
	}

	start, height := calculateThumbBounds(cfg)

	// start = (30-9) * 35 / 70 = 10
	require.Equal(t, 9, height)
	require.Equal(t, 10, start)
}

func TestCalculateThumbBounds_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 100000).Draw(t, "total")
		vh := rapid.IntRange(1, 500).Draw(t, "viewportHeight")
		maxOffset := max(total-vh, 0)
		offset := rapid.IntRange(0, maxOffset).Draw(t, "offset")

		start, height := calculateThumbBounds(ScrollbarConfig{
			TotalLines:     total,
			ViewportHeight: vh,
			ScrollOffset:   offset,
		})

		// The thumb is at least one row and fits inside the track.
		require.GreaterOrEqual(t, height, 1)
		require.LessOrEqual(t, height, vh)
		require.GreaterOrEqual(t, start, 0)
		require.LessOrEqual(t, start+height, vh)

		// Offset extremes pin the thumb to the track ends.
		if offset == 0 {
			require.Equal(t, 0, start)
		}
		if maxOffset > 0 && offset == maxOffset {
			require.Equal(t, vh-height, start)
		}
	})
}

func TestRenderScrollbar(t *testing.T) {
	out := RenderScrollbar(ScrollbarConfig{
		TotalLines:     100,
		ViewportHeight: 10,
		ScrollOffset:   0,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)

	// thumbHeight = max(1, 10*10/100) = 1, at the top.
	require.Equal(t, string(scrollbarThumbChar), ansi.Strip(lines[0]))
	for _, line := range lines[1:] {
		require.Equal(t, string(scrollbarTrackChar), ansi.Strip(line))
	}
}

func TestRenderScrollbar_ContentFits(t *testing.T) {
	out := RenderScrollbar(ScrollbarConfig{
		TotalLines:     5,
		ViewportHeight: 10,
		ScrollOffset:   0,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		require.Equal(t, " ", line)
	}
}

func TestRenderScrollbar_Empty(t *testing.T) {
	require.Equal(t, "", RenderScrollbar(ScrollbarConfig{TotalLines: 0, ViewportHeight: 10}))
	require.Equal(t, "", RenderScrollbar(ScrollbarConfig{TotalLines: 10, ViewportHeight: 0}))
}
