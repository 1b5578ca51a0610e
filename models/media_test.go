// File: /models/media_test.go
package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageURLs(n int) StringSlice {
	urls := make(StringSlice, 0, n)
	for i := 0; i < n; i++ {
		urls = append(urls, fmt.Sprintf("https://picsum.photos/400/400?random=%d", i))
	}
	return urls
}

func TestLayoutVideoWinsOverImages(t *testing.T) {
	layout := LayoutFor(Post{
		VideoUrl:  "https://example.com/clip.mp4",
		ImageUrls: imageURLs(3),
	})
	assert.Equal(t, MediaVideo, layout.Mode)
	assert.Equal(t, "https://example.com/clip.mp4", layout.Video)
	assert.Empty(t, layout.Tiles)
}

func TestLayoutByImageCount(t *testing.T) {
	assert.Equal(t, MediaNone, LayoutFor(Post{}).Mode)

	single := LayoutFor(Post{ImageUrls: imageURLs(1)})
	assert.Equal(t, MediaSingle, single.Mode)

	two := LayoutFor(Post{ImageUrls: imageURLs(2)})
	assert.Equal(t, MediaGrid, two.Mode)
	assert.Equal(t, 2, two.Columns)
	assert.Equal(t, "2/1", two.Aspect)

	three := LayoutFor(Post{ImageUrls: imageURLs(3)})
	assert.Equal(t, 3, three.Columns)
	assert.Equal(t, "1/1", three.Aspect)

	// Four images render as a two-column square grid, not a 3+1 layout.
	four := LayoutFor(Post{ImageUrls: imageURLs(4)})
	assert.Equal(t, 2, four.Columns)
	assert.Equal(t, "1/1", four.Aspect)

	nine := LayoutFor(Post{ImageUrls: imageURLs(9)})
	assert.Equal(t, 3, nine.Columns)
	assert.Len(t, nine.Tiles, 9)
	assert.Zero(t, nine.OverflowCount)
}

func TestLayoutOverflowBadge(t *testing.T) {
	layout := LayoutFor(Post{ImageUrls: imageURLs(12)})
	require.Equal(t, MediaGrid, layout.Mode)
	assert.Len(t, layout.Tiles, MaxGridTiles)
	assert.Equal(t, 3, layout.OverflowCount)
}

func TestDisplayTextTruncation(t *testing.T) {
	short := Post{Content: "短内容"}
	text, truncated := short.DisplayText(false)
	assert.Equal(t, "短内容", text)
	assert.False(t, truncated)

	long := Post{Content: ""}
	for i := 0; i < FeedContentLimit+5; i++ {
		long.Content += "鱼"
	}

	text, truncated = long.DisplayText(false)
	assert.True(t, truncated)
	runes := []rune(text)
	require.Len(t, runes, FeedContentLimit+3)
	assert.Equal(t, "...", string(runes[FeedContentLimit:]))

	text, truncated = long.DisplayText(true)
	assert.True(t, truncated)
	assert.Equal(t, long.Content, text)

	// Exactly at the limit nothing is cut.
	exact := Post{Content: string([]rune(long.Content)[:FeedContentLimit])}
	text, truncated = exact.DisplayText(false)
	assert.False(t, truncated)
	assert.Equal(t, exact.Content, text)
}
