// File: /models/media.go
package models

// Media layout modes.
const (
	MediaNone   = "none"
	MediaVideo  = "video"
	MediaSingle = "single"
	MediaGrid   = "grid"
)

// MaxGridTiles caps the visible image grid; the count beyond the cap is
// badged on the last tile.
const MaxGridTiles = 9

type MediaLayout struct {
	Mode          string   `json:"mode"`
	Video         string   `json:"video,omitempty"`
	Columns       int      `json:"columns,omitempty"`
	Aspect        string   `json:"aspect,omitempty"`
	Tiles         []string `json:"tiles,omitempty"`
	OverflowCount int      `json:"overflow_count,omitempty"`
}

// LayoutFor resolves the media rendering policy for a post. A video wins
// outright and images are ignored; otherwise the image count picks the
// grid shape.
func LayoutFor(p Post) MediaLayout {
	if p.VideoUrl != "" {
		return MediaLayout{Mode: MediaVideo, Video: p.VideoUrl}
	}

	count := len(p.ImageUrls)
	if count == 0 {
		return MediaLayout{Mode: MediaNone}
	}
	if count == 1 {
		return MediaLayout{Mode: MediaSingle, Tiles: []string{p.ImageUrls[0]}}
	}

	layout := MediaLayout{Mode: MediaGrid, Columns: 3, Aspect: "1/1"}
	switch count {
	case 2:
		layout.Columns = 2
		layout.Aspect = "2/1"
	case 4:
		layout.Columns = 2
	}

	tiles := p.ImageUrls
	if count > MaxGridTiles {
		tiles = tiles[:MaxGridTiles]
		layout.OverflowCount = count - MaxGridTiles
	}
	layout.Tiles = []string(tiles)
	return layout
}
