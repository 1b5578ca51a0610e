// File: /models/post.go
package models

import (
	"time"
)

type Post struct {
	ID            string      `json:"id" gorm:"primaryKey;size:191"`
	UserID        string      `json:"user_id" gorm:"not null;size:191;index"`
	Content       string      `json:"content"`
	ImageUrls     StringSlice `json:"images" gorm:"type:json"`
	VideoUrl      string      `json:"video,omitempty" gorm:"size:500"`
	Location      string      `json:"location" gorm:"size:255"`
	LikesCount    int         `json:"likes" gorm:"default:0"`
	CommentsCount int         `json:"comments" gorm:"default:0"`
	Tags          StringSlice `json:"tags" gorm:"type:json"`
	TimeLabel     string      `json:"timestamp" gorm:"size:50"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	User     User      `json:"user" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments_list" gorm:"foreignKey:PostID"`
}

type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;index:idx_post_likes_pair,unique"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index:idx_post_likes_pair,unique"`
	CreatedAt time.Time `json:"created_at"`
}

type PostBookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    string    `json:"post_id" gorm:"not null;size:191;index:idx_post_bookmarks_pair,unique"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index:idx_post_bookmarks_pair,unique"`
	CreatedAt time.Time `json:"created_at"`
}

// PostInteractions represents the viewing user's interaction states
type PostInteractions struct {
	IsLiked          bool `json:"is_liked"`
	IsBookmarked     bool `json:"is_bookmarked"`
	IsAuthorFollowed bool `json:"is_author_followed"`
}

// PostView is a post decorated for display: interaction states, the
// truncation applied in the feed, and the resolved media layout.
type PostView struct {
	Post
	Interactions   PostInteractions `json:"interactions"`
	DisplayContent string           `json:"display_content"`
	Truncated      bool             `json:"truncated"`
	Expanded       bool             `json:"expanded"`
	Media          MediaLayout      `json:"media"`
}

// FeedContentLimit is the rune count beyond which feed text is collapsed
// behind the expand toggle. Detail views always show the full text.
const FeedContentLimit = 60

// DisplayText returns the (possibly truncated) feed text for a post.
func (p Post) DisplayText(expanded bool) (text string, truncated bool) {
	runes := []rune(p.Content)
	if len(runes) <= FeedContentLimit {
		return p.Content, false
	}
	if expanded {
		return p.Content, true
	}
	return string(runes[:FeedContentLimit]) + "...", true
}
