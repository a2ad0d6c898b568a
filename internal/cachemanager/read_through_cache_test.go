package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type blameInput struct {
	Ref  string
	Path string
}

func newBlameReadThrough(calls *int, loadErr error, skipCache bool) *ReadThroughCache[string, []string, blameInput] {
	manager := NewInMemoryCacheManager[string, []string]("blame-cache", DefaultExpiration, DefaultCleanupInterval)
	return NewReadThroughCache[string, []string, blameInput](
		manager,
		func(ctx context.Context, input blameInput) ([]string, error) {
			*calls++
			if loadErr != nil {
				return nil, loadErr
			}
			return []string{input.Ref + ":" + input.Path}, nil
		},
		skipCache,
	)
}

func TestReadThroughCache_Get_LoadsOnMissThenCaches(t *testing.T) {
	calls := 0
	rtc := newBlameReadThrough(&calls, nil, false)
	input := blameInput{Ref: "HEAD", Path: "main.go"}

	got, err := rtc.Get(context.Background(), "blame:HEAD:main.go", input, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []string{"HEAD:main.go"}, got)
	require.Equal(t, 1, calls)

	got, err = rtc.Get(context.Background(), "blame:HEAD:main.go", input, time.Minute)
	require.NoError(t, err)
	require.Equal(t, []string{"HEAD:main.go"}, got)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	calls := 0
	rtc := newBlameReadThrough(&calls, nil, true)
	input := blameInput{Ref: "HEAD", Path: "main.go"}

	for i := 0; i < 3; i++ {
		_, err := rtc.Get(context.Background(), "key", input, time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, 3, calls)
}

func TestReadThroughCache_Get_LoaderErrorNotCached(t *testing.T) {
	calls := 0
	loadErr := errors.New("git blame failed")
	rtc := newBlameReadThrough(&calls, loadErr, false)

	_, err := rtc.Get(context.Background(), "key", blameInput{}, time.Minute)
	require.ErrorIs(t, err, loadErr)

	_, err = rtc.Get(context.Background(), "key", blameInput{}, time.Minute)
	require.ErrorIs(t, err, loadErr)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_GetWithRefresh(t *testing.T) {
	calls := 0
	rtc := newBlameReadThrough(&calls, nil, false)
	input := blameInput{Ref: "HEAD", Path: "main.go"}

	_, err := rtc.GetWithRefresh(context.Background(), "key", input, time.Minute)
	require.NoError(t, err)
	_, err = rtc.GetWithRefresh(context.Background(), "key", input, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	calls := 0
	rtc := newBlameReadThrough(&calls, nil, false)
	input := blameInput{Ref: "HEAD", Path: "main.go"}

	_, err := rtc.Get(context.Background(), "key", input, time.Minute)
	require.NoError(t, err)

	require.NoError(t, rtc.Invalidate(context.Background(), "key"))

	_, err = rtc.Get(context.Background(), "key", input, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}
