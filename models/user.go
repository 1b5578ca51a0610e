// File: /models/user.go
package models

import (
	"time"
)

// SelfUserID is the sentinel id for the session's own profile.
const SelfUserID = "me"

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:191"`
	Name           string    `json:"name" gorm:"not null;size:255"`
	Avatar         string    `json:"avatar" gorm:"size:500"`
	Level          string    `json:"level" gorm:"size:50"`
	Bio            string    `json:"bio"`
	BgImage        string    `json:"bg_image" gorm:"size:500"`
	LikesCount     int       `json:"likes_count" gorm:"default:0"`
	FollowersCount int       `json:"followers_count" gorm:"default:0"`
	FollowingCount int       `json:"following_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

type Follow struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FollowerID  string    `json:"follower_id" gorm:"not null;size:191;index:idx_follows_pair,unique"`
	FollowingID string    `json:"following_id" gorm:"not null;size:191;index:idx_follows_pair,unique"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileView is a profile with the viewer's follow state resolved.
type ProfileView struct {
	User
	IsFollowing bool `json:"is_following"`
}

// UserListEntry is a row in a follower/following list. The follow state is
// read from the same follows table the profile header counters are derived
// from, so toggling here and in the header can never diverge.
type UserListEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	IsFollowing bool   `json:"is_following"`
	IsMutual    bool   `json:"is_mutual"`
}

// ViewRecord tracks a post opened by a user, for the history overlay.
type ViewRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;index"`
	PostID    string    `json:"post_id" gorm:"not null;size:191"`
	CreatedAt time.Time `json:"created_at"`
}
